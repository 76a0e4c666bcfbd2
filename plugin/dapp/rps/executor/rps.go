// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/metrics"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
)

var rlog = log.New("module", "execs.rps")

var driverName = rt.RpsX

var (
	execOkCounter   = metrics.Counter("rps.exec.ok")
	execFailCounter = metrics.Counter("rps.exec.fail")
)

// 执行器配置 [exec.sub.rps]
type subConfig struct {
	// 游戏结算触发者: anyparticipant, anycaller, owner
	ResolutionTrigger string `json:"resolutionTrigger"`
	// 单局游戏桌的默认触发者
	TableResolutionTrigger string `json:"tableResolutionTrigger"`
	MaxTimeoutBlocks       int64  `json:"maxTimeoutBlocks"`
}

type config struct {
	gameTrigger      int32
	tableTrigger     int32
	maxTimeoutBlocks int64
}

var conf = defaultConfig()

func defaultConfig() config {
	return config{
		gameTrigger:      rt.TriggerAnyCaller,
		tableTrigger:     rt.TriggerOwner,
		maxTimeoutBlocks: 100000,
	}
}

func init() {
	drivers.Register(driverName, newRps, Init)
}

// Init reads [exec.sub.rps], an unknown trigger name panics
func Init(name string, sub []byte) {
	var scfg subConfig
	types.MustDecodeSub(sub, &scfg)
	c := defaultConfig()
	if scfg.ResolutionTrigger != "" {
		c.gameTrigger = mustParseTrigger(scfg.ResolutionTrigger)
	}
	if scfg.TableResolutionTrigger != "" {
		c.tableTrigger = mustParseTrigger(scfg.TableResolutionTrigger)
	}
	if scfg.MaxTimeoutBlocks > 0 {
		c.maxTimeoutBlocks = scfg.MaxTimeoutBlocks
	}
	conf = c
	rlog.Debug("Init", "name", name, "gameTrigger", rt.TriggerName(c.gameTrigger),
		"tableTrigger", rt.TriggerName(c.tableTrigger), "maxTimeoutBlocks", c.maxTimeoutBlocks)
}

func mustParseTrigger(name string) int32 {
	ty, ok := rt.ParseTrigger(name)
	if !ok {
		panic("rps: unknown resolution trigger " + name)
	}
	return ty
}

// GetName driver name
func GetName() string {
	return driverName
}

// Rps driver
type Rps struct {
	drivers.DriverBase
}

func newRps() drivers.Driver {
	r := &Rps{}
	r.SetName(driverName)
	return r
}

// CheckTx only Enrol, StartGame and JoinGame carry value
func (r *Rps) CheckTx(tx *types.Transaction, index int) error {
	var action rt.RpsAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return err
	}
	if tx.Value != 0 && !rt.IsPayable(action.Ty) {
		return rt.ErrNotPayable
	}
	return nil
}

// Exec decodes the action and dispatches it
func (r *Rps) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action rt.RpsAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	rlog.Debug("exec rps tx", "action", action.String())
	actiondb, err := NewAction(r, tx, index)
	if err != nil {
		return nil, err
	}
	receipt, err := actiondb.dispatch(&action)
	if err != nil {
		execFailCounter.Inc(1)
		rlog.Debug("Exec", "ty", action.Ty, "addr", actiondb.fromaddr, "err", err)
		return nil, err
	}
	execOkCounter.Inc(1)
	metrics.Counter("rps.action." + actionName(action.Ty)).Inc(1)
	return receipt, nil
}

func (action *Action) dispatch(a *rt.RpsAction) (*types.Receipt, error) {
	switch {
	case a.Ty == rt.RpsActionCreateTable && a.CreateTable != nil:
		return action.CreateTable(a.CreateTable)
	case a.Ty == rt.RpsActionEnrol && a.Enrol != nil:
		return action.Enrol(a.Enrol)
	case a.Ty == rt.RpsActionPlay && a.Play != nil:
		return action.Play(a.Play)
	case a.Ty == rt.RpsActionRevealTable && a.Reveal != nil:
		return action.RevealTable(a.Reveal)
	case a.Ty == rt.RpsActionChooseWinner && a.ChooseWinner != nil:
		return action.ChooseWinner(a.ChooseWinner)
	case a.Ty == rt.RpsActionStartGame && a.StartGame != nil:
		return action.StartGame(a.StartGame)
	case a.Ty == rt.RpsActionJoinGame && a.JoinGame != nil:
		return action.JoinGame(a.JoinGame)
	case a.Ty == rt.RpsActionCommit && a.Commit != nil:
		return action.Commit(a.Commit)
	case a.Ty == rt.RpsActionRevealGame && a.Reveal != nil:
		return action.RevealGame(a.Reveal)
	case a.Ty == rt.RpsActionClaim && a.Claim != nil:
		return action.Claim(a.Claim)
	case a.Ty == rt.RpsActionWithdraw:
		return action.Withdraw()
	}
	return nil, types.ErrActionNotSupport
}

func actionName(ty int32) string {
	switch ty {
	case rt.RpsActionCreateTable:
		return "createTable"
	case rt.RpsActionEnrol:
		return "enrol"
	case rt.RpsActionPlay:
		return "play"
	case rt.RpsActionRevealTable:
		return "revealTable"
	case rt.RpsActionChooseWinner:
		return "chooseWinner"
	case rt.RpsActionStartGame:
		return "startGame"
	case rt.RpsActionJoinGame:
		return "joinGame"
	case rt.RpsActionCommit:
		return "commit"
	case rt.RpsActionRevealGame:
		return "revealGame"
	case rt.RpsActionClaim:
		return "claim"
	case rt.RpsActionWithdraw:
		return "withdraw"
	}
	return "unknown"
}

// ExecLocal keeps the owner and status indexes in step with the rps logs
func (r *Rps) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) ([]*types.KeyValue, error) {
	if receipt.Ty != types.ExecOk {
		return nil, nil
	}
	var kvs []*types.KeyValue
	for _, item := range receipt.Logs {
		switch item.Ty {
		case rt.TyLogCreation:
			var l rt.ReceiptCreation
			if err := types.Decode(item.Log, &l); err != nil {
				panic(err) //数据错误了，已经被修改了
			}
			kvs = append(kvs, addTableOwnerIndex(l.Owner, l.TableId, l.Index))
		case rt.TyLogGameStart, rt.TyLogGameJoin, rt.TyLogGameCommit, rt.TyLogGameReveal, rt.TyLogGameResolve:
			var l rt.ReceiptGame
			if err := types.Decode(item.Log, &l); err != nil {
				panic(err)
			}
			kvs = append(kvs, updateGameIndex(&l)...)
		}
	}
	return kvs, nil
}
