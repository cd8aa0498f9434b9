package handler_test

import (
	"context"
	"crowdsync/internal/core"
	"crowdsync/internal/http/handler"
	"crowdsync/internal/http/handler/fake"
	"crowdsync/internal/ledger"
	"crowdsync/internal/transaction"
	"crowdsync/internal/wallet"
	tokenIssuer "crowdsync/pkg/jwt"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type response struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeResponse(w *httptest.ResponseRecorder) response {
	var resp response
	ExpectWithOffset(1, json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
	return resp
}

func eth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

var _ = Describe("CrowdfundHandler", func() {
	var (
		ch            *handler.CrowdfundHandler
		fakeService   *fake.CrowdfundService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		account       common.Address
		connected     wallet.View
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		account = common.HexToAddress("0xA")
		connected = wallet.View{
			Account:      account,
			Balance:      eth(2),
			BalanceKnown: true,
			State:        wallet.Connected,
			Epoch:        1,
		}

		fakeService = new(fake.CrowdfundService)
		fakeService.InstalledReturns(true)
		fakeService.SessionReturns(connected)

		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		ch = handler.NewCrowdfundHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
	})

	Describe("HandleGetSession", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/crowdfund/session", nil)
		})

		JustBeforeEach(func() {
			ch.HandleGetSession(w, req)
		})

		It("returns the account and its ether balance", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var session map[string]any
			Expect(json.Unmarshal(decodeResponse(w).Data, &session)).To(Succeed())
			Expect(session["account"]).To(Equal(account.Hex()))
			Expect(session["balance"]).To(Equal("2"))
			Expect(session["balanceWei"]).To(Equal("2000000000000000000"))
			Expect(session["state"]).To(Equal("connected"))
		})

		When("no wallet is installed", func() {
			BeforeEach(func() {
				fakeService.InstalledReturns(false)
			})

			It("asks the user to install one", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
				Expect(decodeResponse(w).Error).To(Equal("Please install a wallet"))
				Expect(fakeService.SessionCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleConnect", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/crowdfund/session/connect", nil)
			fakeService.ConnectReturns(core.Connection{Session: connected, Token: "test-token"}, nil)
		})

		JustBeforeEach(func() {
			ch.HandleConnect(w, req)
		})

		It("returns the session token", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var conn map[string]any
			Expect(json.Unmarshal(decodeResponse(w).Data, &conn)).To(Succeed())
			Expect(conn["token"]).To(Equal("test-token"))
			Expect(fakeService.ConnectCallCount()).To(Equal(1))
		})

		When("the user rejects the request", func() {
			BeforeEach(func() {
				fakeService.ConnectReturns(core.Connection{}, wallet.ErrUserRejected)
			})

			It("responds with forbidden", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.ConnectReturns(core.Connection{}, fakeErr)
			})

			It("hides the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(decodeResponse(w).Error).NotTo(ContainSubstring("fake-error"))
			})
		})
	})

	Describe("HandleDisconnect", func() {
		It("clears the session", func() {
			fakeService.SessionReturns(wallet.View{State: wallet.Disconnected, Balance: new(big.Int)})
			req = httptest.NewRequest("POST", "/crowdfund/session/disconnect", nil)
			ch.HandleDisconnect(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeService.DisconnectCallCount()).To(Equal(1))
			var session map[string]any
			Expect(json.Unmarshal(decodeResponse(w).Data, &session)).To(Succeed())
			Expect(session).NotTo(HaveKey("account"))
			Expect(session["state"]).To(Equal("disconnected"))
		})
	})

	Describe("HandleRefreshBalance", func() {
		It("maps an unreachable ledger to bad gateway", func() {
			fakeService.RefreshBalanceReturns(wallet.View{}, wallet.ErrBalanceUnavailable)
			req = httptest.NewRequest("POST", "/crowdfund/session/balance", nil)
			ch.HandleRefreshBalance(w, req)

			Expect(w.Code).To(Equal(http.StatusBadGateway))
		})
	})

	Describe("HandleGetProposals", func() {
		var snapshot ledger.Snapshot

		BeforeEach(func() {
			snapshot = ledger.Snapshot{
				Seq:         4,
				RefreshedAt: time.Unix(1700000000, 0),
				Proposals: []ledger.Proposal{
					{ID: 0, Name: "Park", Description: "A new park", FundRequest: eth(10), Raised: eth(10), Project: common.HexToAddress("0xD")},
					{ID: 1, Name: "Road", Description: "Fix the road", FundRequest: eth(5), Raised: eth(1)},
				},
			}
			fakeService.ProposalsReturns(snapshot, nil)
			req = httptest.NewRequest("GET", "/crowdfund/proposals?refresh=true", nil)
		})

		JustBeforeEach(func() {
			ch.HandleGetProposals(w, req)
		})

		It("lists the proposals with funded and project flags", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, refresh := fakeService.ProposalsArgsForCall(0)
			Expect(refresh).To(BeTrue())

			var view struct {
				Seq       uint64 `json:"seq"`
				Proposals []struct {
					ID            uint64 `json:"id"`
					FundRequest   string `json:"fundRequest"`
					RaisedWei     string `json:"raisedWei"`
					Funded        bool   `json:"funded"`
					Project       string `json:"project"`
					ProjectLinked bool   `json:"projectLinked"`
				} `json:"proposals"`
			}
			Expect(json.Unmarshal(decodeResponse(w).Data, &view)).To(Succeed())
			Expect(view.Seq).To(BeEquivalentTo(4))
			Expect(view.Proposals).To(HaveLen(2))
			Expect(view.Proposals[0].Funded).To(BeTrue())
			Expect(view.Proposals[0].ProjectLinked).To(BeTrue())
			Expect(view.Proposals[0].Project).To(Equal(common.HexToAddress("0xD").Hex()))
			Expect(view.Proposals[1].FundRequest).To(Equal("5"))
			Expect(view.Proposals[1].RaisedWei).To(Equal("1000000000000000000"))
			Expect(view.Proposals[1].Funded).To(BeFalse())
			Expect(view.Proposals[1].ProjectLinked).To(BeFalse())
		})

		When("the refresh flag is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/crowdfund/proposals?refresh=maybe", nil)
			})

			It("responds with bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.ProposalsCallCount()).To(Equal(0))
			})
		})

		When("the ledger is unreachable", func() {
			BeforeEach(func() {
				fakeService.ProposalsReturns(ledger.Snapshot{}, ledger.ErrLedgerUnreachable)
			})

			It("responds with bad gateway", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
			})
		})

		When("the session is not connected", func() {
			BeforeEach(func() {
				fakeService.ProposalsReturns(ledger.Snapshot{}, wallet.ErrNotConnected)
			})

			It("responds with unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleContribute", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/crowdfund/proposals/3/contributions", strings.NewReader(`{"amount":"0.5"}`))
			req.SetPathValue("id", "3")
			req.Header.Set("AUTH_TOKEN", "test-token")
			fakeService.DispatchReturns(core.PendingTransaction{
				LocalID: uuid.New(),
				Kind:    transaction.KindContribute,
				Hash:    common.HexToHash("0x1"),
				Status:  transaction.StatusSubmitted,
				LockKey: "proposal:3",
				State:   core.StateSubmitted,
			}, nil)
		})

		JustBeforeEach(func() {
			ch.HandleContribute(w, req)
		})

		It("dispatches the contribution", func() {
			Expect(w.Code).To(Equal(http.StatusAccepted))
			Expect(fakeService.DispatchCallCount()).To(Equal(1))
			_, token, request := fakeService.DispatchArgsForCall(0)
			Expect(token).To(Equal("test-token"))
			Expect(request).To(Equal(transaction.Contribute{ProposalID: 3, Amount: "0.5"}))

			var pending map[string]any
			Expect(json.Unmarshal(decodeResponse(w).Data, &pending)).To(Succeed())
			Expect(pending["lockKey"]).To(Equal("proposal:3"))
			Expect(pending["state"]).To(Equal(string(core.StateSubmitted)))
		})

		When("the token header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("responds with unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.DispatchCallCount()).To(Equal(0))
			})
		})

		When("the proposal id is not a number", func() {
			BeforeEach(func() {
				req.SetPathValue("id", "three")
			})

			It("responds with bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.DispatchCallCount()).To(Equal(0))
			})
		})

		When("the payload cannot be decoded", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
				fakeValidator.DecodeJSONPayloadStub = nil
			})

			It("responds with bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.DispatchCallCount()).To(Equal(0))
			})
		})

		When("the amount is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/crowdfund/proposals/3/contributions", strings.NewReader(`{}`))
				req.SetPathValue("id", "3")
				req.Header.Set("AUTH_TOKEN", "test-token")
			})

			It("responds with bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.DispatchCallCount()).To(Equal(0))
			})
		})
	})

	Describe("dispatch error mapping", func() {
		DescribeTable("dispatch errors",
			func(err error, code int) {
				fakeService.DispatchReturns(core.PendingTransaction{}, err)
				w = httptest.NewRecorder()
				req = httptest.NewRequest("POST", "/crowdfund/proposals/3/contributions", strings.NewReader(`{"amount":"0.5"}`))
				req.SetPathValue("id", "3")
				req.Header.Set("AUTH_TOKEN", "test-token")
				ch.HandleContribute(w, req)
				Expect(w.Code).To(Equal(code))
			},
			Entry("invalid amount", transaction.ErrInvalidInput, http.StatusBadRequest),
			Entry("action in progress", core.ErrActionInProgress, http.StatusConflict),
			Entry("session changed", core.ErrSessionChanged, http.StatusUnauthorized),
			Entry("expired token", tokenIssuer.ErrTokenExpired, http.StatusUnauthorized),
			Entry("user rejected", wallet.ErrUserRejected, http.StatusForbidden),
			Entry("no wallet", wallet.ErrNoWalletInstalled, http.StatusServiceUnavailable),
			Entry("unexpected", errors.New("boom"), http.StatusInternalServerError),
		)
	})

	Describe("HandleWithdraw", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/crowdfund/projects/0xD/withdrawals", nil)
			req.SetPathValue("address", "0x000000000000000000000000000000000000000d")
			req.Header.Set("AUTH_TOKEN", "test-token")
			fakeService.DispatchReturns(core.PendingTransaction{}, &transaction.RevertError{Reason: "Not completed"})
		})

		JustBeforeEach(func() {
			ch.HandleWithdraw(w, req)
		})

		It("shows the revert reason verbatim", func() {
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(decodeResponse(w).Error).To(ContainSubstring("Not completed"))
			_, _, request := fakeService.DispatchArgsForCall(0)
			Expect(request).To(Equal(transaction.Withdraw{Project: "0x000000000000000000000000000000000000000d"}))
		})
	})

	Describe("HandleCreateProposal", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/crowdfund/proposals", strings.NewReader(
				`{"name":"Park","description":"A new park","fundRequest":"10","executionTime":1767225600}`))
			req.Header.Set("AUTH_TOKEN", "test-token")
			fakeService.DispatchReturns(core.PendingTransaction{Kind: transaction.KindCreateProposal}, nil)
		})

		JustBeforeEach(func() {
			ch.HandleCreateProposal(w, req)
		})

		It("dispatches the proposal", func() {
			Expect(w.Code).To(Equal(http.StatusAccepted))
			_, _, request := fakeService.DispatchArgsForCall(0)
			Expect(request).To(Equal(transaction.CreateProposal{
				Name:          "Park",
				Description:   "A new park",
				FundRequest:   "10",
				ExecutionTime: "1767225600",
			}))
		})
	})

	Describe("HandleGetTransactions", func() {
		It("lists pending transactions", func() {
			id := uuid.New()
			fakeService.PendingTransactionsReturns([]core.PendingTransaction{{LocalID: id, Kind: transaction.KindWithdraw}})
			req = httptest.NewRequest("GET", "/crowdfund/transactions", nil)
			ch.HandleGetTransactions(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var pending []map[string]any
			Expect(json.Unmarshal(decodeResponse(w).Data, &pending)).To(Succeed())
			Expect(pending).To(HaveLen(1))
			Expect(pending[0]["id"]).To(Equal(id.String()))
			Expect(pending[0]["kind"]).To(Equal("withdraw"))
		})
	})

	Describe("HandleGetNotifications", func() {
		It("works without a wallet", func() {
			fakeService.InstalledReturns(false)
			fakeService.NotificationsReturns([]core.Notification{{ID: uuid.New(), Level: core.LevelError, Reason: "Not completed"}})
			req = httptest.NewRequest("GET", "/crowdfund/notifications", nil)
			ch.HandleGetNotifications(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var notifications []map[string]any
			Expect(json.Unmarshal(decodeResponse(w).Data, &notifications)).To(Succeed())
			Expect(notifications[0]["reason"]).To(Equal("Not completed"))
			Expect(notifications[0]["level"]).To(Equal(string(core.LevelError)))
		})
	})

	Describe("HandleEvents", func() {
		var feed event.Feed

		It("streams change events until the client leaves", func() {
			fakeService.SubscribeChangesStub = func(sink chan<- core.ChangeEvent) event.Subscription {
				return feed.Subscribe(sink)
			}

			ctx, cancel := context.WithCancel(context.Background())
			req = httptest.NewRequest("GET", "/crowdfund/events", nil).WithContext(ctx)

			done := make(chan struct{})
			go func() {
				defer close(done)
				ch.HandleEvents(w, req)
			}()

			id := uint64(3)
			Eventually(func() int {
				return feed.Send(core.ChangeEvent{
					Kind:       core.ChangeContributionConfirmed,
					ProposalID: &id,
				})
			}).Should(Equal(1))
			cancel()
			Eventually(done).Should(BeClosed())

			Expect(w.Header().Get("Content-Type")).To(Equal("text/event-stream"))
			Expect(w.Body.String()).To(ContainSubstring("event: contribution-confirmed\n"))
			Expect(w.Body.String()).To(ContainSubstring(`"proposalId":3`))
		})
	})
})
