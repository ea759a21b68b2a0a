package config

import (
	"github.com/fox-one/pkg/store/db"
)

// Config rwrd node config
type Config struct {
	App      App       `json:"app"`
	DB       db.Config `json:"db"`
	Pool     Pool      `json:"pool"`
	Registry Registry  `json:"registry"`
	Worker   Worker    `json:"worker"`
}

// App app scope config
type App struct {
	Location string `json:"location"`
	// Authority identity allowed to spend from the vault
	Authority string `json:"authority" valid:"required"`
	// VaultID the pool vault account
	VaultID string `json:"vault_id" valid:"required"`
}

// Pool pool bootstrap parameters. Rates are yearly basis points.
type Pool struct {
	AssetID            string `json:"asset_id" valid:"required"`
	BaseRate           uint64 `json:"base_rate"`
	UtilizationSlope   uint64 `json:"utilization_slope"`
	ProtocolFeePercent uint8  `json:"protocol_fee_percent"`
}

// Registry merchant registry. An empty endpoint means merchants are served
// from the local store.
type Registry struct {
	Endpoint string `json:"endpoint"`
}

// Worker worker cadence
type Worker struct {
	SnapshotSpec       string `json:"snapshot_spec"`
	EventRetentionDays int64  `json:"event_retention_days"`
}
