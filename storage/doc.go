// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++             = concatenation of byte data
// 3. box id         = box digest as 32 byte SHA3-256(nonce ++ content)
// 4. car identifier = car digest as 64 byte SHA3-512(packed car fields)
// 5. txId           = transaction digest as 32 byte SHA3-256(packed transaction)
// 6. count          = successive index value as big endian uint64 (8 bytes)
// 7. owner          = identity bytes of the locking proposition
//
// Boxes:
//
//   B ++ box id            - unspent box store
//                            data: packed box (nonce ++ content)
//
// Car registry:
//
//   C ++ car identifier    - live car registration
//                            data: box id of the current Car box
//   S ++ car identifier    - open sell order
//                            data: box id of the SellOrder box
//
// Ownership:
//
//   N ++ owner             - next count value to use for appending to owned boxes
//                            data: count
//   L ++ owner ++ count    - list of owned boxes
//                            data: box id
//   D ++ owner ++ box id   - position in list of owned boxes, for delete after spend
//                            data: count
//
// Transactions:
//
//   T ++ txId              - applied transactions
//                            data: packed transaction data
//
// Testing:
//   Z ++ key               - testing data
package storage
