package entity

// ChainID is the opaque hexadecimal chain identifier supplied by the wallet
// environment (e.g. "0x1"). It is never created or validated here; any value
// outside the known set simply falls through to mainnet defaults.
type ChainID string

// Constants for the chains Protect runs dedicated endpoints on.
const (
	ChainMainnet ChainID = "0x1"
	ChainGoerli  ChainID = "0x5"
	ChainSepolia ChainID = "0xaa36a7"
)

// Protect RPC hosts per network. Every chain id outside the known set maps
// to the production host.
const (
	hostMainnet = "rpc.flashbots.net"
	hostGoerli  = "rpc-goerli.flashbots.net"
	hostSepolia = "rpc-sepolia.flashbots.net"
)

// Name returns the human-readable network name for the three known chains.
// Unknown chains are labeled by their raw identifier.
func (c ChainID) Name() string {
	switch c {
	case ChainMainnet:
		return "Mainnet"
	case ChainGoerli:
		return "Goerli"
	case ChainSepolia:
		return "Sepolia"
	default:
		return string(c)
	}
}

// RPCHost selects the Protect endpoint host for the chain. This is a total
// function: unrecognized ids are not an error, they get the production host.
func (c ChainID) RPCHost() string {
	switch c {
	case ChainGoerli:
		return hostGoerli
	case ChainSepolia:
		return hostSepolia
	default:
		return hostMainnet
	}
}

// Currency defines the native currency details of a chain.
type Currency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Ether is the native currency descriptor used for every Protect network.
var Ether = Currency{
	Name:     "Ethereum",
	Symbol:   "ETH",
	Decimals: 18,
}
