package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainID_RPCHost(t *testing.T) {
	tests := []struct {
		name  string
		chain ChainID
		want  string
	}{
		{"mainnet", ChainMainnet, "rpc.flashbots.net"},
		{"goerli", ChainGoerli, "rpc-goerli.flashbots.net"},
		{"sepolia", ChainSepolia, "rpc-sepolia.flashbots.net"},
		{"unknown chain falls through to production", ChainID("0x89"), "rpc.flashbots.net"},
		{"empty chain falls through to production", ChainID(""), "rpc.flashbots.net"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.chain.RPCHost())
		})
	}
}

func TestChainID_Name(t *testing.T) {
	assert.Equal(t, "Mainnet", ChainMainnet.Name())
	assert.Equal(t, "Goerli", ChainGoerli.Name())
	assert.Equal(t, "Sepolia", ChainSepolia.Name())
	assert.Equal(t, "0x2105", ChainID("0x2105").Name())
}

func TestHintPreferences_Hints(t *testing.T) {
	tests := []struct {
		name  string
		prefs HintPreferences
		want  []string
	}{
		{"none enabled", HintPreferences{}, nil},
		{
			"all enabled, declaration order",
			HintPreferences{
				Calldata:         true,
				ContractAddress:  true,
				FunctionSelector: true,
				Logs:             true,
				DefaultLogs:      true,
				Hash:             true,
			},
			[]string{"calldata", "contract_address", "function_selector", "logs", "default_logs", "hash"},
		},
		{
			"camel-cased flags become snake_case",
			HintPreferences{ContractAddress: true, FunctionSelector: true, DefaultLogs: true},
			[]string{"contract_address", "function_selector", "default_logs"},
		},
		{
			"single flag",
			HintPreferences{Hash: true},
			[]string{"hash"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.prefs.Hints())
		})
	}
}

func TestBuildEndpointURL(t *testing.T) {
	tests := []struct {
		name  string
		chain ChainID
		hints HintPreferences
		sel   BuilderSelection
		want  string
	}{
		{
			name:  "goerli with calldata and logs hints",
			chain: ChainGoerli,
			hints: HintPreferences{Calldata: true, Logs: true},
			want:  "https://rpc-goerli.flashbots.net/?hint=calldata&hint=logs",
		},
		{
			name:  "mainnet defaults",
			chain: ChainMainnet,
			want:  "https://rpc.flashbots.net/",
		},
		{
			name:  "fast mode adds path segment",
			chain: ChainMainnet,
			sel:   BuilderSelection{Fast: true},
			want:  "https://rpc.flashbots.net/fast",
		},
		{
			name:  "fast mode suppresses supplied builders",
			chain: ChainMainnet,
			sel:   BuilderSelection{Fast: true, Builders: []string{"x"}},
			want:  "https://rpc.flashbots.net/fast",
		},
		{
			name:  "builders lowercased in input order",
			chain: ChainMainnet,
			sel:   BuilderSelection{Builders: []string{"Flashbots", "beaverbuild"}},
			want:  "https://rpc.flashbots.net/?builder=flashbots&builder=beaverbuild",
		},
		{
			name:  "hints precede builders",
			chain: ChainMainnet,
			hints: HintPreferences{Hash: true},
			sel:   BuilderSelection{Builders: []string{"rsync"}},
			want:  "https://rpc.flashbots.net/?hint=hash&builder=rsync",
		},
		{
			name:  "fast mode keeps hint parameters",
			chain: ChainSepolia,
			hints: HintPreferences{DefaultLogs: true},
			sel:   BuilderSelection{Fast: true},
			want:  "https://rpc-sepolia.flashbots.net/fast?hint=default_logs",
		},
		{
			name:  "unknown chain uses production host",
			chain: ChainID("0xdeadbeef"),
			hints: HintPreferences{Calldata: true},
			want:  "https://rpc.flashbots.net/?hint=calldata",
		},
		{
			name:  "builder names with spaces are escaped",
			chain: ChainMainnet,
			sel:   BuilderSelection{Builders: []string{"Gambit Labs"}},
			want:  "https://rpc.flashbots.net/?builder=gambit+labs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildEndpointURL(tt.chain, tt.hints, tt.sel)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestBuildEndpointURL_Deterministic(t *testing.T) {
	hints := HintPreferences{Calldata: true, Logs: true, Hash: true}
	sel := BuilderSelection{Builders: []string{"Titan", "rsync"}}

	first := BuildEndpointURL(ChainMainnet, hints, sel)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, BuildEndpointURL(ChainMainnet, hints, sel))
	}
}

func TestProtectChainParams(t *testing.T) {
	endpoint := BuildEndpointURL(ChainGoerli, HintPreferences{}, BuilderSelection{})
	params := ProtectChainParams(ChainGoerli, endpoint)

	assert.Equal(t, ChainGoerli, params.ChainID)
	assert.Equal(t, "Flashbots Protect (Goerli)", params.ChainName)
	assert.Equal(t, []string{IconURL}, params.IconURLs)
	assert.Equal(t, Ether, params.NativeCurrency)
	require.Len(t, params.RPCURLs, 1)
	assert.Equal(t, "https://rpc-goerli.flashbots.net/", params.RPCURLs[0])
}

func TestProtectChainParams_UnknownChainLabeledByRawID(t *testing.T) {
	chain := ChainID("0x539")
	params := ProtectChainParams(chain, BuildEndpointURL(chain, HintPreferences{}, BuilderSelection{}))

	assert.Equal(t, "Flashbots Protect (0x539)", params.ChainName)
	assert.Equal(t, "https://rpc.flashbots.net/", params.RPCURLs[0])
}
