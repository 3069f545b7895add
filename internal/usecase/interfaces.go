package usecase

import (
	"context"
	"encoding/json"
	"time"

	"protect-connect/internal/entity"
)

// MethodAddEthereumChain is the wallet RPC method used to register a custom
// network.
const MethodAddEthereumChain = "wallet_addEthereumChain"

// ProviderTypeKey is the locally stored preference cleared on every connect
// so the next attempt re-runs the extension/mobile selection prompt.
const ProviderTypeKey = "providerType"

// WalletConnector defines the wallet-connection handle. Connect suspends
// until the wallet extension responds or the user dismisses the prompt.
type WalletConnector interface {
	Connect(ctx context.Context) error
}

// WalletProvider defines the request-capable provider handle for
// JSON-RPC-style calls to the wallet extension.
type WalletProvider interface {
	Request(ctx context.Context, method string, params interface{}) (json.RawMessage, error)
}

// PreferenceStore defines the local key-value store consumed by the
// connection sequence. Delete is an unconditional side effect with no
// failure path of its own.
type PreferenceStore interface {
	Delete(ctx context.Context, key string)
}

// Clipboard defines the single write-text capability backing the copy
// affordance. Failures are not observable to the user.
type Clipboard interface {
	WriteText(text string) error
}

// EndpointChecker defines the interface for probing a Protect endpoint.
type EndpointChecker interface {
	CheckEndpoint(ctx context.Context, endpoint entity.EndpointURL) (bool, time.Duration, error)
}

// StatusCache defines the interface for caching endpoint probe results.
type StatusCache interface {
	GetStatus(ctx context.Context, endpoint entity.EndpointURL) (entity.EndpointStatus, bool, error)
	SetStatus(ctx context.Context, endpoint entity.EndpointURL, status entity.EndpointStatus, ttl time.Duration) error
}

// ConnectUseCase defines the Protect connection use cases exposed to
// delivery layers.
type ConnectUseCase interface {
	// Endpoint builds the Protect endpoint URL for the given inputs. Pure;
	// recomputed on every call.
	Endpoint(chain entity.ChainID, hints entity.HintPreferences, sel entity.BuilderSelection) entity.EndpointURL

	// Connect runs the full connection sequence: wallet connect, preference
	// reset, add-network request. Failures are logged and swallowed; nothing
	// propagates to the caller.
	Connect(ctx context.Context, chain entity.ChainID, hints entity.HintPreferences, sel entity.BuilderSelection)

	// CopyEndpoint writes the built endpoint URL to the clipboard.
	// Independent of the connection sequence; cannot fail observably.
	CopyEndpoint(chain entity.ChainID, hints entity.HintPreferences, sel entity.BuilderSelection)

	// EndpointStatus reports reachability of the built endpoint, serving
	// cached probe results when fresh.
	EndpointStatus(ctx context.Context, chain entity.ChainID, hints entity.HintPreferences, sel entity.BuilderSelection) entity.EndpointStatus
}
