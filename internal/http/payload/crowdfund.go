package payload

import (
	"crowdsync/internal/transaction"
	"encoding/json"

	"github.com/jellydator/validation"
)

type ContributionRequest struct {
	Amount string `json:"amount"`
}

func (c ContributionRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Amount, validation.Required),
	)
}

func (c ContributionRequest) ToRequest(proposalID uint64) transaction.Contribute {
	return transaction.Contribute{
		ProposalID: proposalID,
		Amount:     c.Amount,
	}
}

// CreateProposalRequest accepts the execution time either as a JSON number
// or as a numeric string.
type CreateProposalRequest struct {
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	FundRequest   string      `json:"fundRequest"`
	ExecutionTime json.Number `json:"executionTime"`
}

func (p CreateProposalRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.FundRequest, validation.Required),
		validation.Field(&p.ExecutionTime, validation.Required),
	)
}

func (p CreateProposalRequest) ToRequest() transaction.CreateProposal {
	return transaction.CreateProposal{
		Name:          p.Name,
		Description:   p.Description,
		FundRequest:   p.FundRequest,
		ExecutionTime: p.ExecutionTime.String(),
	}
}
