// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/sci-crypto/carregistryd/rpc/node"
)

// GetNodeInfo - request information about the connected node
func (client *Client) GetNodeInfo() (*node.InfoReply, error) {

	infoArgs := node.InfoArguments{}

	client.printJson("Info Request", infoArgs)

	reply := &node.InfoReply{}
	err := client.client.Call("Node.Info", infoArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Info Reply", reply)

	return reply, nil
}
