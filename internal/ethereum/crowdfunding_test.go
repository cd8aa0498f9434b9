package ethereum_test

import (
	"context"
	"crowdsync/internal/ethereum"
	"crowdsync/internal/ethereum/fake"
	"errors"
	"math/big"
	"strings"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CrowdfundingContract", func() {
	var (
		contract        *ethereum.CrowdfundingContract
		fakeClient      *fake.EthClient
		ctx             context.Context
		crowdfundingABI abi.ABI
		projectABI      abi.ABI
		address         common.Address
		project         common.Address
	)

	BeforeEach(func() {
		var err error
		crowdfundingABI, err = abi.JSON(strings.NewReader(ethereum.CrowdfundingABI))
		Expect(err).NotTo(HaveOccurred())
		projectABI, err = abi.JSON(strings.NewReader(ethereum.ProjectABI))
		Expect(err).NotTo(HaveOccurred())

		address = common.HexToAddress("0x00000000000000000000000000000000000000c1")
		project = common.HexToAddress("0x00000000000000000000000000000000000000d2")
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		contract = ethereum.NewCrowdfundingContract(address, fakeClient)
	})

	Describe("ProposalsCount", func() {
		BeforeEach(func() {
			out, err := crowdfundingABI.Methods["getProposalsCount"].Outputs.Pack(big.NewInt(3))
			Expect(err).NotTo(HaveOccurred())
			fakeClient.CallContractReturns(out, nil)
		})

		It("returns the count reported by the contract", func() {
			count, err := contract.ProposalsCount(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(uint64(3)))

			_, msg, _ := fakeClient.CallContractArgsForCall(0)
			Expect(*msg.To).To(Equal(address))
			Expect(msg.Data).To(Equal(crowdfundingABI.Methods["getProposalsCount"].ID))
		})

		When("the node call fails", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, errors.New("connection refused"))
			})

			It("wraps the error", func() {
				_, err := contract.ProposalsCount(ctx)
				Expect(err).To(MatchError(ContainSubstring("getProposalsCount")))
				Expect(err).To(MatchError(ContainSubstring("connection refused")))
			})
		})
	})

	Describe("Proposal", func() {
		BeforeEach(func() {
			out, err := crowdfundingABI.Methods["proposals"].Outputs.Pack(
				"Solar roof",
				"Panels for the school",
				big.NewInt(2_000_000_000_000_000_000),
				big.NewInt(500_000_000_000_000_000),
				true,
				project,
			)
			Expect(err).NotTo(HaveOccurred())
			fakeClient.CallContractReturns(out, nil)
		})

		It("decodes the proposal tuple", func() {
			record, err := contract.Proposal(ctx, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Name).To(Equal("Solar roof"))
			Expect(record.Description).To(Equal("Panels for the school"))
			Expect(record.FundRequest.String()).To(Equal("2000000000000000000"))
			Expect(record.TotalFundsRaised.String()).To(Equal("500000000000000000"))
			Expect(record.Executed).To(BeTrue())
			Expect(record.ProjectContract).To(Equal(project))
		})

		It("passes the proposal index", func() {
			_, err := contract.Proposal(ctx, 7)
			Expect(err).NotTo(HaveOccurred())

			_, msg, _ := fakeClient.CallContractArgsForCall(0)
			args, err := crowdfundingABI.Methods["proposals"].Inputs.Unpack(msg.Data[4:])
			Expect(err).NotTo(HaveOccurred())
			Expect(args[0].(*big.Int).Uint64()).To(Equal(uint64(7)))
		})
	})

	Describe("project reads", func() {
		BeforeEach(func() {
			fakeClient.CallContractStub = func(_ context.Context, msg geth.CallMsg, _ *big.Int) ([]byte, error) {
				if *msg.To != project {
					return nil, errors.New("unexpected target")
				}
				switch common.Bytes2Hex(msg.Data[:4]) {
				case common.Bytes2Hex(projectABI.Methods["getBalance"].ID):
					return projectABI.Methods["getBalance"].Outputs.Pack(big.NewInt(11))
				case common.Bytes2Hex(projectABI.Methods["getFinalAmount"].ID):
					return projectABI.Methods["getFinalAmount"].Outputs.Pack(big.NewInt(42))
				}
				return nil, errors.New("unknown method")
			}
		})

		It("reads the project balance", func() {
			balance, err := contract.ProjectBalance(ctx, project)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance.Int64()).To(Equal(int64(11)))
		})

		It("reads the final amount", func() {
			amount, err := contract.ProjectFinalAmount(ctx, project)
			Expect(err).NotTo(HaveOccurred())
			Expect(amount.Int64()).To(Equal(int64(42)))
		})
	})

	Describe("call encoding", func() {
		It("encodes contribute with the proposal id", func() {
			data, err := contract.PackContribute(4)
			Expect(err).NotTo(HaveOccurred())
			Expect(data[:4]).To(Equal(crowdfundingABI.Methods["contribute"].ID))

			args, err := crowdfundingABI.Methods["contribute"].Inputs.Unpack(data[4:])
			Expect(err).NotTo(HaveOccurred())
			Expect(args[0].(*big.Int).Uint64()).To(Equal(uint64(4)))
		})

		It("encodes createProposal arguments in order", func() {
			data, err := contract.PackCreateProposal("Well", "Village well", big.NewInt(10), big.NewInt(1_700_000_000))
			Expect(err).NotTo(HaveOccurred())

			args, err := crowdfundingABI.Methods["createProposal"].Inputs.Unpack(data[4:])
			Expect(err).NotTo(HaveOccurred())
			Expect(args[0]).To(Equal("Well"))
			Expect(args[1]).To(Equal("Village well"))
			Expect(args[2].(*big.Int).Int64()).To(Equal(int64(10)))
			Expect(args[3].(*big.Int).Int64()).To(Equal(int64(1_700_000_000)))
		})

		It("encodes withdrawFunds without arguments", func() {
			data, err := contract.PackWithdrawFunds()
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal(projectABI.Methods["withdrawFunds"].ID))
		})
	})
})
