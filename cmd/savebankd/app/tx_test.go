package savebank

import (
	"bytes"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/sigs"

	"github.com/ThuHoiBao/savebank/x/termdeposit"
)

func TestTxDecoder(t *testing.T) {
	tx := &Tx{
		Sum: &Tx_TermdepositOpenDepositMsg{
			TermdepositOpenDepositMsg: &termdeposit.OpenDepositMsg{
				Metadata: &weave.Metadata{Schema: 1},
				PlanId:   1,
				Amount:   coin.NewCoin(100, 0, "IOV"),
			},
		},
	}
	tx.Fee(weavetest.NewCondition().Address(), coin.NewCoin(0, 100, "IOV"))

	raw, err := tx.Marshal()
	if err != nil {
		t.Fatalf("marshal: %s", err)
	}
	restored, err := TxDecoder(raw)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	msg, err := restored.GetMsg()
	if err != nil {
		t.Fatalf("get message: %s", err)
	}
	if got, want := msg.Path(), "termdeposit/open_deposit"; got != want {
		t.Fatalf("want %q path, got %q", want, got)
	}
	open, ok := msg.(*termdeposit.OpenDepositMsg)
	if !ok {
		t.Fatalf("unexpected message type: %T", msg)
	}
	if open.PlanId != 1 {
		t.Fatalf("unexpected plan id: %d", open.PlanId)
	}
}

func TestSignBytesIgnoreSignatures(t *testing.T) {
	tx := &Tx{
		Sum: &Tx_TermdepositWithdrawDepositMsg{
			TermdepositWithdrawDepositMsg: &termdeposit.WithdrawDepositMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				DepositId: 5,
			},
		},
	}
	unsigned, err := tx.GetSignBytes()
	if err != nil {
		t.Fatalf("sign bytes: %s", err)
	}

	tx.Signatures = []*sigs.StdSignature{
		{Sequence: 1},
	}
	signed, err := tx.GetSignBytes()
	if err != nil {
		t.Fatalf("sign bytes: %s", err)
	}
	if !bytes.Equal(unsigned, signed) {
		t.Fatal("sign bytes must not depend on attached signatures")
	}
	if len(tx.Signatures) != 1 {
		t.Fatal("signatures must be restored after computing sign bytes")
	}
}
