//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-dlogproof/pkg/dlog"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go dlogproof WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoDLog", map[string]interface{}{
		"Prove":  js.FuncOf(Prove),
		"Verify": js.FuncOf(Verify),
	})

	<-c
}

// request is shared by Prove and Verify. Empty curve and hash select the
// defaults.
type request struct {
	Curve       string          `json:"curve"`
	Hash        string          `json:"hash"`
	SessionID   string          `json:"sessionID"`
	Participant int32           `json:"participant"`
	PrivateKey  string          `json:"privateKey,omitempty"`
	PublicKey   string          `json:"publicKey,omitempty"`
	Proof       json.RawMessage `json:"proof,omitempty"`
}

func (r *request) suite() (*dlog.Suite, error) {
	curve, h := r.Curve, r.Hash
	if curve == "" {
		curve = dlog.DefaultCurve
	}
	if h == "" {
		h = dlog.DefaultHash
	}
	return dlog.NewSuite(curve, h)
}

func parseRequest(args []js.Value) (*request, *dlog.Suite, error) {
	if len(args) != 1 {
		return nil, nil, fmt.Errorf("expected 1 argument (jsonRequest)")
	}
	var req request
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return nil, nil, fmt.Errorf("invalid json: %v", err)
	}
	suite, err := req.suite()
	if err != nil {
		return nil, nil, err
	}
	return &req, suite, nil
}

// Prove generates a proof for the private key in the request.
// Arguments:
// 0: JSON {curve, hash, sessionID, participant, privateKey}
// Returns:
// JSON {publicKey, proof: {commitment, response}} or an "error: ..." string
func Prove(this js.Value, args []js.Value) interface{} {
	req, suite, err := parseRequest(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	raw, err := hex.DecodeString(req.PrivateKey)
	if err != nil {
		return fmt.Sprintf("error: invalid private key hex: %v", err)
	}
	x, err := suite.ParseScalar(raw)
	if err != nil {
		return fmt.Sprintf("error: invalid private key: %v", err)
	}
	G := suite.Generator()
	Y := G.ScalarMult(x)

	proof, err := suite.GenerateProof(req.SessionID, req.Participant, x, Y, G)
	if err != nil {
		return fmt.Sprintf("error: prove failed: %v", err)
	}
	proofJSON, err := suite.MarshalProofJSON(proof)
	if err != nil {
		return fmt.Sprintf("error: marshal proof failed: %v", err)
	}

	resp := map[string]interface{}{
		"publicKey": hex.EncodeToString(Y.Bytes()),
		"proof":     json.RawMessage(proofJSON),
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// Verify checks the proof in the request against the public key.
// Arguments:
// 0: JSON {curve, hash, sessionID, participant, publicKey, proof}
// Returns:
// JSON {valid, reason} or an "error: ..." string on derivation failure
func Verify(this js.Value, args []js.Value) interface{} {
	req, suite, err := parseRequest(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	reject := func(reason string) interface{} {
		respBytes, _ := json.Marshal(map[string]interface{}{"valid": false, "reason": reason})
		return string(respBytes)
	}

	raw, err := hex.DecodeString(req.PublicKey)
	if err != nil {
		return reject(fmt.Sprintf("invalid public key hex: %v", err))
	}
	Y, err := suite.ParsePoint(raw)
	if err != nil {
		return reject(fmt.Sprintf("invalid public key: %v", err))
	}
	proof, err := suite.UnmarshalProofJSON(req.Proof)
	if err != nil {
		return reject(err.Error())
	}

	ok, err := suite.VerifyProof(proof, req.SessionID, req.Participant, Y, suite.Generator())
	if err != nil {
		return fmt.Sprintf("error: verify failed: %v", err)
	}
	if !ok {
		return reject("proof does not verify")
	}
	respBytes, _ := json.Marshal(map[string]interface{}{"valid": true})
	return string(respBytes)
}
