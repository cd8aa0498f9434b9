package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap/zapcore"
)

var ErrHelp error = errors.New("help requested")

type App struct {
	Port                   string        `long:"api-port" env:"API_PORT" default:"8080" description:"HTTP listen port"`
	NodeURL                string        `long:"eth-node-url" env:"ETH_NODE_URL" description:"Ethereum JSON-RPC endpoint"`
	CrowdfundingAddress    string        `long:"crowdfunding-address" env:"CROWDFUNDING_ADDRESS" description:"address of the Crowdfunding contract"`
	KeystoreDir            string        `long:"keystore-dir" env:"KEYSTORE_DIR" description:"keystore directory holding the wallet accounts"`
	KeystorePassphrase     string        `long:"keystore-passphrase" env:"KEYSTORE_PASSPHRASE" description:"passphrase unlocking the keystore accounts"`
	JWTSecret              string        `long:"jwt-secret" env:"JWT_SECRET" description:"secret for session tokens"`
	ConfirmationTimeout    time.Duration `long:"confirmation-timeout" env:"CONFIRMATION_TIMEOUT" default:"120s" description:"how long to wait for a receipt"`
	LateConfirmationWindow time.Duration `long:"late-confirmation-window" env:"LATE_CONFIRMATION_WINDOW" default:"10m" description:"how long to watch dropped transactions"`
	ReceiptPollInterval    time.Duration `long:"receipt-poll-interval" env:"RECEIPT_POLL_INTERVAL" default:"2s" description:"receipt polling interval"`
	LedgerReadsPerSecond   int           `long:"ledger-reads-per-second" env:"LEDGER_READS_PER_SECOND" default:"20" description:"rate limit for ledger reads"`
	LedgerReadConcurrency  int           `long:"ledger-read-concurrency" env:"LEDGER_READ_CONCURRENCY" default:"4" description:"parallel ledger reads per refresh"`
	LedgerMaxProposals     uint64        `long:"ledger-max-proposals" env:"LEDGER_MAX_PROPOSALS" default:"10000" description:"largest proposal count accepted from the ledger"`
	LogLevel               string        `long:"log-level" env:"LOG_LEVEL" default:"info" description:"log level"`
}

// NewApp reads the configuration from args and the environment. Flags win
// over environment variables.
func NewApp(args []string) (App, error) {
	var app App
	if _, err := flags.NewParser(&app, flags.HelpFlag).ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return App{}, fmt.Errorf("%w: %s", ErrHelp, ferr.Message)
		}
		return App{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required),
		validation.Field(&a.NodeURL, validation.Required),
		validation.Field(&a.CrowdfundingAddress, validation.Required, validation.By(contractAddress)),
		validation.Field(&a.JWTSecret, validation.Required),
		validation.Field(&a.ConfirmationTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&a.LateConfirmationWindow, validation.Min(time.Duration(0))),
		validation.Field(&a.ReceiptPollInterval, validation.Required, validation.Min(10*time.Millisecond)),
		validation.Field(&a.LedgerReadsPerSecond, validation.Required, validation.Min(1)),
		validation.Field(&a.LedgerReadConcurrency, validation.Required, validation.Min(1)),
		validation.Field(&a.LedgerMaxProposals, validation.Required),
		validation.Field(&a.LogLevel, validation.By(logLevel)),
	)
}

func (a App) Contract() common.Address {
	return common.HexToAddress(a.CrowdfundingAddress)
}

func (a App) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(a.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func contractAddress(value interface{}) error {
	s, _ := value.(string)
	if !common.IsHexAddress(s) || common.HexToAddress(s) == (common.Address{}) {
		return validation.NewError("validation_contract_address", "must be a non-zero hex address")
	}
	return nil
}

func logLevel(value interface{}) error {
	s, _ := value.(string)
	if _, err := zapcore.ParseLevel(s); err != nil {
		return validation.NewError("validation_log_level", "must be one of debug, info, warn, error")
	}
	return nil
}
