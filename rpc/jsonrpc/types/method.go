// Copyright (c) 2014-2015 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package types

// Method is the RPC method name passed to dcrjson.MustRegister in each
// command file's init block, named to keep those registration calls
// self-documenting at the call site.
type Method = string
