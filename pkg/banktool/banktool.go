/*
banktool provides demonstration banking tools with an interactive side
effect: transfers must be confirmed by the operator before they are
performed. The confirmation prompt is written to an injected writer and
the answer read from an injected reader, so the package works in a
terminal and in tests alike.
*/
package banktool

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	tool "github.com/mutablelogic/go-agent/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Bank holds in-memory account balances and the operator terminal
type Bank struct {
	sync.Mutex
	r        *bufio.Reader
	w        io.Writer
	balances map[string]float64
}

type transfer struct {
	bank *Bank
}

type balance struct {
	bank *Bank
}

// TransferRequest is the input for the transfer tool
type TransferRequest struct {
	From   string  `json:"from" jsonschema:"Account to transfer from"`
	To     string  `json:"to" jsonschema:"Account to transfer to"`
	Amount float64 `json:"amount" jsonschema:"Amount to transfer"`
}

// BalanceRequest is the input for the balance tool
type BalanceRequest struct {
	Account string `json:"account" jsonschema:"Account to query"`
}

var _ tool.Tool = (*transfer)(nil)
var _ tool.Tool = (*balance)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a bank with the given opening balances, prompting on w
// and reading confirmations from r
func New(r io.Reader, w io.Writer, balances map[string]float64) *Bank {
	bank := &Bank{
		r:        bufio.NewReader(r),
		w:        w,
		balances: make(map[string]float64, len(balances)),
	}
	for account, amount := range balances {
		bank.balances[account] = amount
	}
	return bank
}

// Tools returns the banking tools
func (bank *Bank) Tools() []tool.Tool {
	return []tool.Tool{
		&transfer{bank: bank},
		&balance{bank: bank},
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Balance returns the current balance for an account
func (bank *Bank) Balance(account string) (float64, error) {
	bank.Lock()
	defer bank.Unlock()
	amount, exists := bank.balances[account]
	if !exists {
		return 0, fmt.Errorf("no such account: %q", account)
	}
	return amount, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// confirm prompts the operator and returns true only on a "y" answer
func (bank *Bank) confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprintf(bank.w, "%s [y/N] ", prompt); err != nil {
		return false, err
	}
	answer, err := bank.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// TRANSFER

func (*transfer) Name() string {
	return "transfer_money"
}

func (*transfer) Description() string {
	return "Transfer an amount between two accounts. The operator must confirm the transfer before it is performed."
}

func (*transfer) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[TransferRequest](nil)
}

func (t *transfer) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req TransferRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, err
		}
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %v", req.Amount)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	confirmed, err := t.bank.confirm(fmt.Sprintf("Transfer %.2f from %q to %q?", req.Amount, req.From, req.To))
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, fmt.Errorf("transfer declined by operator")
	}

	t.bank.Lock()
	defer t.bank.Unlock()
	from, exists := t.bank.balances[req.From]
	if !exists {
		return nil, fmt.Errorf("no such account: %q", req.From)
	}
	if _, exists := t.bank.balances[req.To]; !exists {
		return nil, fmt.Errorf("no such account: %q", req.To)
	}
	if from < req.Amount {
		return nil, fmt.Errorf("insufficient funds in %q: %.2f", req.From, from)
	}
	t.bank.balances[req.From] -= req.Amount
	t.bank.balances[req.To] += req.Amount

	return fmt.Sprintf("transferred %.2f from %q to %q", req.Amount, req.From, req.To), nil
}

///////////////////////////////////////////////////////////////////////////////
// BALANCE

func (*balance) Name() string {
	return "account_balance"
}

func (*balance) Description() string {
	return "Return the current balance of an account."
}

func (*balance) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[BalanceRequest](nil)
}

func (b *balance) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req BalanceRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, err
		}
	}
	return b.bank.Balance(req.Account)
}
