// Package chaincfg defines chain configuration parameters.
//
// In addition to the main network, there exists a regression test network
// used for unit and RPC-server tests. These networks are incompatible with
// each other (each sharing a different genesis block) and software should
// handle errors where input intended for one network is used on an
// application instance running on a different network.
//
// For main packages, a (typically global) var may be assigned the address of
// one of the standard Param vars for use as the application's "active"
// network. When a network parameter is needed, it may then be looked up
// through this variable (either directly, or hidden in a library call).
//
//  package main
//
//  import (
//          "flag"
//          "fmt"
//          "log"
//
//          "github.com/galaxywarscoin/GalaxywarsOcean/chaincfg"
//  )
//
//  var regtest = flag.Bool("regtest", false, "operate on the regression test network")
//
//  // By default (without -regtest), use mainnet.
//  var chainParams = chaincfg.MainNetParams()
//
//  func main() {
//          flag.Parse()
//
//          if *regtest {
//                  chainParams = chaincfg.RegNetParams()
//          }
//
//          // later...
//          height := int64(250000)
//          fmt.Println(chainParams.AlgorithmFor(height))
//  }
//
// If an application does not use one of the standard networks, a new Params
// struct may be created which defines the parameters for the non-standard
// network. As a general rule of thumb, all network parameters should be
// unique to the network, but parameter collisions can still occur.
package chaincfg
