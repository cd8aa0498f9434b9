package ethereum

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// CrowdfundingABI is the part of the Crowdfunding contract interface the client uses.
const CrowdfundingABI = `[
	{"type":"function","name":"getProposalsCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"proposals","stateMutability":"view","inputs":[{"name":"","type":"uint256"}],"outputs":[
		{"name":"name","type":"string"},
		{"name":"description","type":"string"},
		{"name":"fundRequest","type":"uint256"},
		{"name":"totalFundsRaised","type":"uint256"},
		{"name":"executed","type":"bool"},
		{"name":"projectContract","type":"address"}
	]},
	{"type":"function","name":"createProposal","stateMutability":"nonpayable","inputs":[
		{"name":"name","type":"string"},
		{"name":"description","type":"string"},
		{"name":"fundRequest","type":"uint256"},
		{"name":"executionTime","type":"uint256"}
	],"outputs":[]},
	{"type":"function","name":"contribute","stateMutability":"payable","inputs":[{"name":"proposalId","type":"uint256"}],"outputs":[]}
]`

// ProjectABI is the interface of the per-proposal Project contract.
const ProjectABI = `[
	{"type":"function","name":"getBalance","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getFinalAmount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"withdrawFunds","stateMutability":"nonpayable","inputs":[],"outputs":[]}
]`

var (
	crowdfundingABI = mustParseABI(CrowdfundingABI)
	projectABI      = mustParseABI(ProjectABI)
)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic("parse contract abi: " + err.Error())
	}
	return parsed
}
