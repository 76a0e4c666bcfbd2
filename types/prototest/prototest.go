// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prototest checks that the go message structs match their .proto layout.
//
// The message structs are written by hand with protoc-gen-go style tags, CheckFile keeps
// them and the .proto file in step: every message must exist on both sides with the same
// field numbers, names, labels and types.
package prototest

import (
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"testing"

	proto "github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Field one field of a .proto message
type Field struct {
	Repeated bool
	Type     string
	Name     string
	Number   int
}

var (
	commentRe = regexp.MustCompile(`//[^\n]*`)
	messageRe = regexp.MustCompile(`(?s)message\s+(\w+)\s*\{(.*?)\}`)
	fieldRe   = regexp.MustCompile(`^\s*(repeated\s+)?(\w+)\s+(\w+)\s*=\s*(\d+)\s*$`)
)

var scalars = map[string]reflect.Type{
	"int32":  reflect.TypeOf(int32(0)),
	"int64":  reflect.TypeOf(int64(0)),
	"uint32": reflect.TypeOf(uint32(0)),
	"uint64": reflect.TypeOf(uint64(0)),
	"bool":   reflect.TypeOf(false),
	"string": reflect.TypeOf(""),
	"bytes":  reflect.TypeOf([]byte(nil)),
}

// Parse messages of a flat proto3 file, nested messages, enums and oneofs are not used here
func Parse(src string) (map[string][]Field, error) {
	src = commentRe.ReplaceAllString(src, "")
	out := make(map[string][]Field)
	for _, m := range messageRe.FindAllStringSubmatch(src, -1) {
		var fields []Field
		for _, stmt := range strings.Split(m[2], ";") {
			if strings.TrimSpace(stmt) == "" {
				continue
			}
			f := fieldRe.FindStringSubmatch(stmt)
			if f == nil {
				return nil, &parseError{message: m[1], stmt: strings.TrimSpace(stmt)}
			}
			num, _ := strconv.Atoi(f[4])
			fields = append(fields, Field{Repeated: f[1] != "", Type: f[2], Name: f[3], Number: num})
		}
		out[m[1]] = fields
	}
	return out, nil
}

type parseError struct {
	message, stmt string
}

func (e *parseError) Error() string {
	return "message " + e.message + ": cannot parse " + strconv.Quote(e.stmt)
}

type goField struct {
	typ   reflect.Type
	wire  string
	label string
	name  string
}

func goFields(t reflect.Type) map[int]goField {
	out := make(map[int]goField)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("protobuf")
		if tag == "" {
			continue
		}
		parts := strings.Split(tag, ",")
		if len(parts) < 4 {
			continue
		}
		num, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		gf := goField{typ: sf.Type, wire: parts[0], label: parts[2]}
		for _, p := range parts[3:] {
			if strings.HasPrefix(p, "name=") {
				gf.name = strings.TrimPrefix(p, "name=")
			}
		}
		out[num] = gf
	}
	return out
}

func wireOf(typ string) string {
	switch typ {
	case "string", "bytes":
		return "bytes"
	case "int32", "int64", "uint32", "uint64", "bool":
		return "varint"
	}
	return "bytes"
}

// CheckFile every message of the .proto at path has a go struct in msgs and the reverse
func CheckFile(t *testing.T, path string, msgs ...proto.Message) {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	parsed, err := Parse(string(data))
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, msg := range msgs {
		typ := reflect.TypeOf(msg).Elem()
		name := typ.Name()
		seen[name] = true
		fields, ok := parsed[name]
		if !assert.True(t, ok, "%s has no message in %s", name, path) {
			continue
		}
		gfs := goFields(typ)
		assert.Len(t, gfs, len(fields), "field count of %s", name)
		for _, f := range fields {
			gf, ok := gfs[f.Number]
			if !assert.True(t, ok, "%s.%s = %d has no go field", name, f.Name, f.Number) {
				continue
			}
			assert.Equal(t, f.Name, gf.name, "%s field %d", name, f.Number)
			assert.Equal(t, wireOf(f.Type), gf.wire, "%s.%s", name, f.Name)
			label := "opt"
			if f.Repeated {
				label = "rep"
			}
			assert.Equal(t, label, gf.label, "%s.%s", name, f.Name)
			elem := gf.typ
			if f.Repeated {
				if !assert.Equal(t, reflect.Slice, elem.Kind(), "%s.%s", name, f.Name) {
					continue
				}
				elem = elem.Elem()
			}
			if st, ok := scalars[f.Type]; ok {
				assert.Equal(t, st, elem, "%s.%s", name, f.Name)
				continue
			}
			if assert.Equal(t, reflect.Ptr, elem.Kind(), "%s.%s", name, f.Name) {
				assert.Equal(t, f.Type, elem.Elem().Name(), "%s.%s", name, f.Name)
			}
		}
	}
	for name := range parsed {
		assert.True(t, seen[name], "message %s of %s has no go struct", name, path)
	}
}
