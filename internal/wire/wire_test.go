package wire_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"reflect"

	"github.com/renproject/surge/surgeutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/smallyu/go-dlogproof/internal/wire"
)

var _ = Describe("Proof wire format", func() {
	trials := 10
	t := reflect.TypeOf(Proof{})

	randomProof := func() Proof {
		commitment := make([]byte, 65)
		response := make([]byte, 32)
		rand.Read(commitment)
		rand.Read(response)
		return Proof{Commitment: commitment, Response: response}
	}

	Context("surge marshalling", func() {
		It("should be the same after marshalling and unmarshalling", func() {
			for i := 0; i < trials; i++ {
				Expect(surgeutil.MarshalUnmarshalCheck(t)).To(Succeed())
			}
		})

		It("should not panic when fuzzing", func() {
			for i := 0; i < trials; i++ {
				Expect(func() { surgeutil.Fuzz(t) }).ToNot(Panic())
			}
		})

		It("should return an error when the buffer is too small", func() {
			for i := 0; i < trials; i++ {
				Expect(surgeutil.MarshalBufTooSmall(t)).To(Succeed())
				Expect(surgeutil.UnmarshalBufTooSmall(t)).To(Succeed())
			}
		})

		It("should return an error when the memory quota is too small", func() {
			for i := 0; i < trials; i++ {
				Expect(surgeutil.MarshalRemTooSmall(t)).To(Succeed())
				Expect(surgeutil.UnmarshalRemTooSmall(t)).To(Succeed())
			}
		})
	})

	Context("binary encoding", func() {
		It("should round trip", func() {
			for i := 0; i < trials; i++ {
				p := randomProof()
				data, err := Encode(p)
				Expect(err).ToNot(HaveOccurred())

				decoded, err := Decode(data)
				Expect(err).ToNot(HaveOccurred())
				Expect(decoded.Commitment).To(Equal(p.Commitment))
				Expect(decoded.Response).To(Equal(p.Response))
			}
		})

		It("should reject trailing bytes", func() {
			data, err := Encode(randomProof())
			Expect(err).ToNot(HaveOccurred())

			_, err = Decode(append(data, 0x00))
			Expect(err).To(Equal(ErrTrailingBytes))
		})

		It("should reject truncated input", func() {
			data, err := Encode(randomProof())
			Expect(err).ToNot(HaveOccurred())

			_, err = Decode(data[:len(data)-1])
			Expect(err).To(HaveOccurred())
		})

		It("should refuse proofs larger than the quota", func() {
			p := Proof{Commitment: bytes.Repeat([]byte{1}, MaxProofBytes), Response: []byte{1}}
			_, err := Encode(p)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("json encoding", func() {
		It("should use hex fields named commitment and response", func() {
			p := Proof{Commitment: []byte{0x04, 0xab}, Response: []byte{0x01}}
			data, err := json.Marshal(p)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(data)).To(Equal(`{"commitment":"04ab","response":"01"}`))

			var decoded Proof
			Expect(json.Unmarshal(data, &decoded)).To(Succeed())
			Expect(decoded).To(Equal(p))
		})

		It("should reject invalid hex", func() {
			var decoded Proof
			Expect(json.Unmarshal([]byte(`{"commitment":"zz","response":"01"}`), &decoded)).ToNot(Succeed())
			Expect(json.Unmarshal([]byte(`{"commitment":"04","response":"0"}`), &decoded)).ToNot(Succeed())
		})
	})
})
