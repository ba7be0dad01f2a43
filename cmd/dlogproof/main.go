// Command dlogproof generates and checks Schnorr proofs of knowledge of a
// discrete logarithm bound to a session and a participant.
//
//	dlogproof keygen
//	dlogproof prove  -session s1 -participant 3 -key <hex>
//	dlogproof verify -session s1 -participant 3 -pub <hex> -proof '<json>'
package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "dlogproof: ", 0)
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	var err error
	switch args[0] {
	case "keygen":
		err = keygen(args[1:], stdout, stderr)
	case "prove":
		err = prove(args[1:], stdout, stderr)
	case "verify":
		var ok bool
		ok, err = verify(args[1:], stdout, stderr)
		if err == nil && !ok {
			return exitInvalid
		}
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return exitOK
	default:
		logger.Printf("unknown command %q", args[0])
		usage(stderr)
		return exitUsage
	}

	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			logger.Println(err)
		}
		return exitUsage
	}
	return exitOK
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: dlogproof <keygen|prove|verify> [flags]")
	fmt.Fprintln(w, "run 'dlogproof <command> -h' for the flags of a command")
}

type keyPair struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

func keygen(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := registerCommon(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := readConfig(fs, *configFile)
	if err != nil {
		return err
	}
	suite, err := cfg.Suite()
	if err != nil {
		return err
	}

	x, Y, err := suite.GenerateKey()
	if err != nil {
		return fmt.Errorf("generating key: %w", err)
	}
	return writeJSON(stdout, keyPair{
		PrivateKey: hex.EncodeToString(x.Bytes()),
		PublicKey:  hex.EncodeToString(Y.Bytes()),
	})
}

func prove(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("prove", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := registerCommon(fs)
	keyHex := fs.String("key", "", "hex-encoded private key")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *keyHex == "" {
		return fmt.Errorf("%w: -key is required", errUsage)
	}
	cfg, err := readConfig(fs, *configFile)
	if err != nil {
		return err
	}
	suite, err := cfg.Suite()
	if err != nil {
		return err
	}

	raw, err := hex.DecodeString(*keyHex)
	if err != nil {
		return fmt.Errorf("decoding private key: %w", err)
	}
	x, err := suite.ParseScalar(raw)
	if err != nil {
		return fmt.Errorf("parsing private key: %w", err)
	}
	G := suite.Generator()
	Y := G.ScalarMult(x)

	proof, err := suite.GenerateProof(cfg.SessionID, cfg.Participant, x, Y, G)
	if err != nil {
		return fmt.Errorf("generating proof: %w", err)
	}
	out, err := suite.MarshalProofJSON(proof)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

func verify(args []string, stdout, stderr io.Writer) (bool, error) {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := registerCommon(fs)
	pubHex := fs.String("pub", "", "hex-encoded public key")
	proofJSON := fs.String("proof", "", "JSON-encoded proof")
	if err := fs.Parse(args); err != nil {
		return false, err
	}
	if *pubHex == "" || *proofJSON == "" {
		return false, fmt.Errorf("%w: -pub and -proof are required", errUsage)
	}
	cfg, err := readConfig(fs, *configFile)
	if err != nil {
		return false, err
	}
	suite, err := cfg.Suite()
	if err != nil {
		return false, err
	}

	logger := log.New(stderr, "dlogproof: ", 0)
	fail := func(format string, v ...interface{}) (bool, error) {
		logger.Printf(format, v...)
		fmt.Fprintln(stdout, "invalid")
		return false, nil
	}

	raw, err := hex.DecodeString(*pubHex)
	if err != nil {
		return fail("decoding public key: %v", err)
	}
	Y, err := suite.ParsePoint(raw)
	if err != nil {
		return fail("parsing public key: %v", err)
	}
	proof, err := suite.UnmarshalProofJSON([]byte(*proofJSON))
	if err != nil {
		return fail("parsing proof: %v", err)
	}

	ok, err := suite.VerifyProof(proof, cfg.SessionID, cfg.Participant, Y, suite.Generator())
	if err != nil {
		return false, fmt.Errorf("verifying proof: %w", err)
	}
	if !ok {
		fmt.Fprintln(stdout, "invalid")
		return false, nil
	}
	fmt.Fprintln(stdout, "valid")
	return true, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	return enc.Encode(v)
}
