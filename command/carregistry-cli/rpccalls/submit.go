// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/sci-crypto/carregistryd/account"
	"github.com/sci-crypto/carregistryd/boxrecord"
	"github.com/sci-crypto/carregistryd/rpc/registry"
	"github.com/sci-crypto/carregistryd/transactionrecord"
)

// signTransaction - sign all inputs of a transaction with one key
//
// the same key signs every input; when role is not nil the first proof
// carries the role flag instead of a plain signature
func signTransaction(tx *transactionrecord.Transaction, signer *account.PrivateKey, role *byte) error {

	signable, err := tx.SignableBytes()
	if nil != err {
		return err
	}

	signature := account.Signature(ed25519.Sign(signer.PrivateKeyBytes(), signable))

	proofs := make([]boxrecord.Proof, len(tx.Inputs))
	for i := range proofs {
		proofs[i] = &boxrecord.SignatureProof{
			Signature: signature,
		}
	}
	if nil != role {
		proofs[0] = &boxrecord.RoleProof{
			Role:      *role,
			Signature: signature,
		}
	}
	tx.Proofs = proofs

	return nil
}

// submit - send a fully signed transaction to the node
func (client *Client) submit(tx *transactionrecord.Transaction) (*registry.SubmitReply, error) {

	packed, err := tx.Pack()
	if nil != err {
		return nil, err
	}

	submitArgs := registry.SubmitArguments{
		Payload: hex.EncodeToString(packed),
	}

	client.printJson("Submit Request", submitArgs)

	reply := &registry.SubmitReply{}
	err = client.client.Call("Registry.Submit", submitArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Submit Reply", reply)

	return reply, nil
}
