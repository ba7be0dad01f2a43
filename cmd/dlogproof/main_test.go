package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func newKeyPair(t *testing.T, args ...string) keyPair {
	t.Helper()
	code, out, errOut := runCmd(t, append([]string{"keygen"}, args...)...)
	require.Equal(t, exitOK, code, errOut)

	var kp keyPair
	require.NoError(t, json.Unmarshal([]byte(out), &kp))
	return kp
}

func TestProveVerify(t *testing.T) {
	for _, curve := range []string{"secp256k1", "ed25519", "ristretto255"} {
		t.Run(curve, func(t *testing.T) {
			kp := newKeyPair(t, "-curve", curve)

			code, proof, errOut := runCmd(t, "prove", "-curve", curve,
				"-session", "session_1", "-participant", "1", "-key", kp.PrivateKey)
			require.Equal(t, exitOK, code, errOut)

			code, out, errOut := runCmd(t, "verify", "-curve", curve,
				"-session", "session_1", "-participant", "1",
				"-pub", kp.PublicKey, "-proof", strings.TrimSpace(proof))
			assert.Equal(t, exitOK, code, errOut)
			assert.Equal(t, "valid\n", out)

			code, out, _ = runCmd(t, "verify", "-curve", curve,
				"-session", "session_2", "-participant", "1",
				"-pub", kp.PublicKey, "-proof", strings.TrimSpace(proof))
			assert.Equal(t, exitInvalid, code)
			assert.Equal(t, "invalid\n", out)
		})
	}
}

func TestVerifyMalformedInput(t *testing.T) {
	kp := newKeyPair(t)

	code, out, _ := runCmd(t, "verify", "-pub", "zz", "-proof", "{}")
	assert.Equal(t, exitInvalid, code)
	assert.Equal(t, "invalid\n", out)

	code, out, _ = runCmd(t, "verify", "-pub", kp.PublicKey, "-proof", `{"commitment":"00","response":"00"}`)
	assert.Equal(t, exitInvalid, code)
	assert.Equal(t, "invalid\n", out)
}

func TestUsageErrors(t *testing.T) {
	code, _, _ := runCmd(t)
	assert.Equal(t, exitUsage, code)

	code, _, errOut := runCmd(t, "sign")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, `unknown command "sign"`)

	code, _, errOut = runCmd(t, "prove")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "-key is required")

	code, _, _ = runCmd(t, "verify", "-pub", "04")
	assert.Equal(t, exitUsage, code)

	code, _, errOut = runCmd(t, "keygen", "-curve", "p256")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "unsupported curve")

	code, _, _ = runCmd(t, "keygen", "-participant", "4294967296")
	assert.Equal(t, exitUsage, code)
}

func TestConfigSources(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "dlogproof.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("curve: ed25519\nsession: from-file\nparticipant: 7\n"), 0o600))

	fs := newFlagSet(t, "-config", cfgPath)
	cfg, err := readConfig(fs, cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "ed25519", cfg.Curve)
	assert.Equal(t, "sha256", cfg.Hash)
	assert.Equal(t, "from-file", cfg.SessionID)
	assert.Equal(t, int32(7), cfg.Participant)

	t.Setenv("DLOGPROOF_SESSION", "from-env")
	t.Setenv("DLOGPROOF_HASH", "sha3-256")
	cfg, err = readConfig(fs, cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.SessionID)
	assert.Equal(t, "sha3-256", cfg.Hash)

	fs = newFlagSet(t, "-config", cfgPath, "-session", "from-flag", "-participant", "-2")
	cfg, err = readConfig(fs, cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.SessionID)
	assert.Equal(t, int32(-2), cfg.Participant)
	assert.Equal(t, "ed25519", cfg.Curve)

	_, err = readConfig(newFlagSet(t), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestMalformedParticipant(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		t.Setenv("DLOGPROOF_PARTICIPANT", "abc")
		_, err := readConfig(newFlagSet(t), "")
		assert.ErrorIs(t, err, errUsage)

		code, _, errOut := runCmd(t, "keygen")
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, errOut, "participant")
	})

	t.Run("config file", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "dlogproof.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("participant: \"x\"\n"), 0o600))
		_, err := readConfig(newFlagSet(t), cfgPath)
		assert.ErrorIs(t, err, errUsage)
	})

	t.Run("out of range", func(t *testing.T) {
		t.Setenv("DLOGPROOF_PARTICIPANT", "2147483648")
		_, err := readConfig(newFlagSet(t), "")
		assert.ErrorIs(t, err, errUsage)
	})
}

func newFlagSet(t *testing.T, args ...string) *flag.FlagSet {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	registerCommon(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}
