package ethereum_test

import (
	"context"
	"crowdsync/internal/ethereum"
	"crowdsync/internal/ethereum/fake"
	"errors"
	"math/big"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type dataError struct {
	msg  string
	data interface{}
}

func (e dataError) Error() string          { return e.msg }
func (e dataError) ErrorData() interface{} { return e.data }

func packRevert(reason string) string {
	stringType, err := abi.NewType("string", "", nil)
	Expect(err).NotTo(HaveOccurred())
	encoded, err := abi.Arguments{{Type: stringType}}.Pack(reason)
	Expect(err).NotTo(HaveOccurred())
	return hexutil.Encode(append([]byte{0x08, 0xc3, 0x79, 0xa0}, encoded...))
}

var _ = Describe("NodeService", func() {
	var (
		service    *ethereum.NodeService
		fakeClient *fake.EthClient
		ctx        context.Context
		hash       common.Hash
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		hash = common.HexToHash("0xabc")
		service = ethereum.NewNodeService(fakeClient, time.Millisecond)
	})

	Describe("WaitMined", func() {
		When("the receipt shows up after a few polls", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturnsOnCall(0, nil, geth.NotFound)
				fakeClient.TransactionReceiptReturnsOnCall(1, nil, errors.New("temporary"))
				fakeClient.TransactionReceiptReturnsOnCall(2, &types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
			})

			It("returns the receipt", func() {
				receipt, err := service.WaitMined(ctx, hash)
				Expect(err).NotTo(HaveOccurred())
				Expect(receipt.Status).To(Equal(types.ReceiptStatusSuccessful))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(3))
			})
		})

		When("the receipt never appears", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(nil, geth.NotFound)
			})

			It("stops when the context ends", func() {
				waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
				defer cancel()

				_, err := service.WaitMined(waitCtx, hash)
				Expect(err).To(MatchError(context.DeadlineExceeded))
			})
		})
	})

	Describe("ReplayRevert", func() {
		var (
			from common.Address
			to   common.Address
			tx   *types.Transaction
		)

		BeforeEach(func() {
			from = common.HexToAddress("0x00000000000000000000000000000000000000aa")
			to = common.HexToAddress("0x00000000000000000000000000000000000000bb")
			tx = types.NewTx(&types.DynamicFeeTx{
				Nonce: 1,
				To:    &to,
				Gas:   21000,
				Value: big.NewInt(5),
				Data:  []byte{0x01, 0x02},
			})
		})

		When("the node returns revert data", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, dataError{msg: "execution reverted", data: packRevert("Proposal already executed")})
			})

			It("decodes the reason and replays at the parent block", func() {
				reason, err := service.ReplayRevert(ctx, from, tx, big.NewInt(10))
				Expect(err).NotTo(HaveOccurred())
				Expect(reason).To(Equal("Proposal already executed"))

				_, msg, block := fakeClient.CallContractArgsForCall(0)
				Expect(block.Int64()).To(Equal(int64(9)))
				Expect(msg.From).To(Equal(from))
				Expect(*msg.To).To(Equal(to))
				Expect(msg.Value.Int64()).To(Equal(int64(5)))
				Expect(msg.Data).To(Equal([]byte{0x01, 0x02}))
			})
		})

		When("the call succeeds on replay", func() {
			It("reports that no reason is available", func() {
				_, err := service.ReplayRevert(ctx, from, tx, big.NewInt(10))
				Expect(err).To(MatchError(ethereum.ErrNoRevertReason))
			})
		})

		When("the call fails without a reason", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, errors.New("header not found"))
			})

			It("returns the node error", func() {
				_, err := service.ReplayRevert(ctx, from, tx, big.NewInt(10))
				Expect(err).To(MatchError(ContainSubstring("header not found")))
			})
		})
	})
})

var _ = Describe("RevertReason", func() {
	It("reads the reason from the error message", func() {
		reason, ok := ethereum.RevertReason(errors.New("execution reverted: Goal already reached"))
		Expect(ok).To(BeTrue())
		Expect(reason).To(Equal("Goal already reached"))
	})

	It("prefers ABI encoded revert data", func() {
		reason, ok := ethereum.RevertReason(dataError{msg: "execution reverted", data: packRevert("Only owner")})
		Expect(ok).To(BeTrue())
		Expect(reason).To(Equal("Only owner"))
	})

	It("returns false for unrelated errors", func() {
		_, ok := ethereum.RevertReason(errors.New("nonce too low"))
		Expect(ok).To(BeFalse())
	})

	It("returns false for nil", func() {
		_, ok := ethereum.RevertReason(nil)
		Expect(ok).To(BeFalse())
	})
})
