package core

// System stores system information.
type System struct {
	// Authority identity allowed to spend from the pool vault
	Authority string
	// VaultID the pool vault account holding pooled funds
	VaultID  string
	Location string
	Version  string
}
