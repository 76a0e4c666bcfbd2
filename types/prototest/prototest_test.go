// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prototest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := `syntax = "proto3";
package types;

// a comment { with braces }
message A {
    int64 price = 1; // trailing
    repeated B items = 2;
}

message Empty {}
`
	msgs, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, []Field{
		{Type: "int64", Name: "price", Number: 1},
		{Repeated: true, Type: "B", Name: "items", Number: 2},
	}, msgs["A"])
	assert.Empty(t, msgs["Empty"])

	_, err = Parse(`message C { map<string, int64> m = 1; }`)
	assert.Error(t, err)
}
