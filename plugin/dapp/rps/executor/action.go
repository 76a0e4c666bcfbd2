// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/account"
	dbm "github.com/33cn/rps/common/db"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	proto "github.com/golang/protobuf/proto"
)

// Action one rps transaction
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	value        int64
	blocktime    int64
	height       int64
	execaddr     string
	localDB      drivers.LocalDB
	index        int
}

// NewAction binds tx to the state seen by r
func NewAction(r *Rps, tx *types.Transaction, index int) (*Action, error) {
	fromaddr, err := tx.From()
	if err != nil {
		return nil, err
	}
	return &Action{
		coinsAccount: r.GetCoinsAccount(),
		db:           r.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     fromaddr,
		value:        tx.Value,
		blocktime:    r.GetBlockTime(),
		height:       r.GetHeight(),
		execaddr:     drivers.ExecAddress(tx.Execer),
		localDB:      r.GetLocalDB(),
		index:        index,
	}, nil
}

// GetIndex position of the transaction, sortable across blocks
func (action *Action) GetIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

func (action *Action) save(key []byte, msg proto.Message) []*types.KeyValue {
	value := types.Encode(msg)
	if err := action.db.Set(key, value); err != nil {
		panic(err)
	}
	return []*types.KeyValue{{Key: key, Value: value}}
}

func newLog(ty int32, msg proto.Message) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(msg)}
}

func mergeReceipt(receipt, receipt2 *types.Receipt) *types.Receipt {
	if receipt == nil {
		return receipt2
	}
	if receipt2 == nil {
		return receipt
	}
	receipt.KV = append(receipt.KV, receipt2.KV...)
	receipt.Logs = append(receipt.Logs, receipt2.Logs...)
	return receipt
}

// deposit moves the attached value into the escrow account of the sender and freezes price.
// Anything above price stays withdrawable.
func (action *Action) deposit(price int64) (*types.Receipt, error) {
	if action.value < price {
		return nil, rt.ErrInsufficientPayment
	}
	receipt, err := action.coinsAccount.TransferToExec(action.fromaddr, action.execaddr, action.value)
	if err != nil {
		rlog.Error("deposit.TransferToExec", "addr", action.fromaddr, "execaddr", action.execaddr,
			"amount", action.value, "err", err)
		return nil, err
	}
	receipt2, err := action.coinsAccount.ExecFrozen(action.fromaddr, action.execaddr, price)
	if err != nil {
		rlog.Error("deposit.ExecFrozen", "addr", action.fromaddr, "execaddr", action.execaddr,
			"amount", price, "err", err)
		return nil, err
	}
	return mergeReceipt(receipt, receipt2), nil
}

// award hands the stake of loser to winner and releases the stake of winner
func (action *Action) award(winner, loser string, price int64) (*types.Receipt, error) {
	receipt, err := action.coinsAccount.ExecTransferFrozen(loser, winner, action.execaddr, price)
	if err != nil {
		rlog.Error("award.ExecTransferFrozen", "from", loser, "to", winner, "amount", price, "err", err)
		return nil, err
	}
	receipt2, err := action.refund(winner, price)
	if err != nil {
		return nil, err
	}
	return mergeReceipt(receipt, receipt2), nil
}

// refund releases the stake of addr back to its ledger balance
func (action *Action) refund(addr string, price int64) (*types.Receipt, error) {
	receipt, err := action.coinsAccount.ExecActive(addr, action.execaddr, price)
	if err != nil {
		rlog.Error("refund.ExecActive", "addr", addr, "execaddr", action.execaddr, "amount", price, "err", err)
		return nil, err
	}
	return receipt, nil
}

// settle pays a revealed outcome between player1 and player2
func (action *Action) settle(player1, player2 string, price int64, outcome int32) (*types.Receipt, error) {
	switch outcome {
	case rt.OutcomePlayer1:
		return action.award(player1, player2, price)
	case rt.OutcomePlayer2:
		return action.award(player2, player1, price)
	}
	//平局解冻各自的押注
	receipt, err := action.refund(player1, price)
	if err != nil {
		return nil, err
	}
	receipt2, err := action.refund(player2, price)
	if err != nil {
		return nil, err
	}
	return mergeReceipt(receipt, receipt2), nil
}

// Withdraw pays the whole ledger balance of the sender to its wallet
func (action *Action) Withdraw() (*types.Receipt, error) {
	acc := action.coinsAccount.LoadExecAccount(action.fromaddr, action.execaddr)
	amount := acc.GetBalance()
	if amount == 0 {
		rlog.Error("Withdraw", "addr", action.fromaddr, "err", rt.ErrEmptyWithdrawal)
		return nil, rt.ErrEmptyWithdrawal
	}
	receipt, err := action.coinsAccount.TransferWithdraw(action.fromaddr, action.execaddr, amount)
	if err != nil {
		rlog.Error("Withdraw", "addr", action.fromaddr, "amount", amount, "err", err)
		return nil, err
	}
	r := &rt.ReceiptWithdraw{Player: action.fromaddr, Amount: amount}
	receipt.Logs = append(receipt.Logs, newLog(rt.TyLogWithdraw, r))
	return receipt, nil
}

// allowed reports whether caller may resolve under trigger
func allowed(trigger int32, caller, owner string, participants ...string) bool {
	switch trigger {
	case rt.TriggerAnyCaller:
		return true
	case rt.TriggerOwner:
		return caller == owner
	case rt.TriggerAnyParticipant:
		for _, p := range participants {
			if p != "" && caller == p {
				return true
			}
		}
	}
	return false
}

// elapsed the window of timeoutBlocks opened at anchor is over at height
func elapsed(anchor, timeoutBlocks, height int64) bool {
	return anchor > 0 && height >= anchor+timeoutBlocks
}
