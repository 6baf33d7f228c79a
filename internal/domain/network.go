package domain

// NetworkContext identifies the network a deployment targets.
// It is passed explicitly into use cases instead of being read from ambient configuration.
type NetworkContext struct {
	ChainID uint64
	Name    string
	RPCURL  string
}

// Network is a resolved network from foundry.toml
type Network struct {
	Name    string `json:"name"`
	ChainID uint64 `json:"chainId"`
	RPCURL  string `json:"rpcUrl"`
}

// Context returns the NetworkContext for this network
func (n *Network) Context() NetworkContext {
	return NetworkContext{
		ChainID: n.ChainID,
		Name:    n.Name,
		RPCURL:  n.RPCURL,
	}
}
