package savebank

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/validators"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/ThuHoiBao/savebank/x/ledger"
	"github.com/ThuHoiBao/savebank/x/plan"
	"github.com/ThuHoiBao/savebank/x/reserve"
	"github.com/ThuHoiBao/savebank/x/termdeposit"
	"github.com/ThuHoiBao/savebank/x/vault"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "IOV"
	if len(args) > 0 {
		ticker = args[0]
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out a recovery phrase
		bz, phrase, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(phrase)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	collectorAddr, err := hex.DecodeString("3b11c732b8fc1f09beb34031302fe2ab347c5c14")
	if err != nil {
		return nil, errors.Wrap(err, "cannot hex decode collector address")
	}
	orchestrator := termdeposit.Authority().String()
	return json.Marshal(dict{
		"cash": array{
			dict{
				"address": addr,
				"coins": array{
					dict{
						"whole":  123456789,
						"ticker": ticker,
					},
				},
			},
			// The interest pool starts funded so that deposits
			// opened right after launch can be served.
			dict{
				"address": reserve.Account().String(),
				"coins": array{
					dict{
						"whole":  1000000,
						"ticker": ticker,
					},
				},
			},
		},
		"conf": dict{
			"cash": cash.Configuration{
				CollectorAddress: collectorAddr,
				MinimalFee:       coin.Coin{Whole: 0}, // no fee
			},
			"migration": dict{
				"admin": addr,
			},
			"plan": dict{
				"owner": addr,
			},
			"vault": dict{
				"owner":        addr,
				"orchestrator": orchestrator,
				"ticker":       ticker,
			},
			"reserve": dict{
				"owner":        addr,
				"orchestrator": orchestrator,
				"fee_receiver": addr,
			},
			"ledger": dict{
				"owner":        addr,
				"orchestrator": orchestrator,
				"base_uri":     "https://deposits.example.com/",
			},
			"termdeposit": dict{
				"owner":        addr,
				"grace_period": 3 * 24 * 60 * 60,
			},
		},
		// A starter offering so that the chain is usable out of the
		// box. Three months at 7.2% with a 1.5% early exit penalty.
		"plans": array{
			dict{
				"tenor_seconds": 7776000,
				"apr_bps":       720,
				"min_deposit":   dict{"whole": 10, "ticker": ticker},
				"max_deposit":   dict{"whole": 1000000, "ticker": ticker},
				"penalty_bps":   150,
			},
		},
		"initialize_schema": []dict{
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "validators", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "plan", "ver": 1},
			{"pkg": "vault", "ver": 1},
			{"pkg": "reserve", "ver": 1},
			{"pkg": "ledger", "ver": 1},
			{"pkg": "termdeposit", "ver": 1},
		},
	})
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "abci.db")
	}

	stack := Stack(options.MinFee)
	application, err := Application("savebank", stack, TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&validators.Initializer{},
		&plan.Initializer{},
		&vault.Initializer{},
		&reserve.Initializer{},
		&ledger.Initializer{},
		&termdeposit.Initializer{},
	))

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}

// GenerateCoinKey returns the address of a public key,
// along with the secret phrase to recover the private key.
// You can give coins to this address and return the recovery
// phrase to the user to access them.
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	addr := privKey.PublicKey().Address()
	return addr, "TODO: add a recovery phrase", nil
}
