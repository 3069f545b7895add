package entity

import "time"

// Fixed presentation values used when registering a Protect network with a
// wallet.
const (
	ProductName = "Flashbots Protect"
	IconURL     = "https://docs.flashbots.net/img/logo.png"
)

// AddChainParams is the parameter object for a wallet_addEthereumChain
// request, shaped exactly as wallet extensions expect it.
type AddChainParams struct {
	ChainID        ChainID  `json:"chainId"`
	ChainName      string   `json:"chainName"`
	IconURLs       []string `json:"iconUrls"`
	NativeCurrency Currency `json:"nativeCurrency"`
	RPCURLs        []string `json:"rpcUrls"`
}

// ProtectChainParams assembles the add-network payload for a chain: product
// label, fixed icon and currency, and the built endpoint as the sole RPC URL.
func ProtectChainParams(chain ChainID, endpoint EndpointURL) AddChainParams {
	return AddChainParams{
		ChainID:        chain,
		ChainName:      ProductName + " (" + chain.Name() + ")",
		IconURLs:       []string{IconURL},
		NativeCurrency: Ether,
		RPCURLs:        []string{endpoint.String()},
	}
}

// EndpointStatus holds the outcome of a health probe against a Protect
// endpoint.
type EndpointStatus struct {
	Endpoint  EndpointURL `json:"endpoint"`
	Reachable bool        `json:"reachable"`
	LatencyMs int64       `json:"latencyMs"`
	CheckedAt time.Time   `json:"checkedAt"`
}
