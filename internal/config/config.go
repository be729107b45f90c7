package config

import (
	"os"
	"strconv"
)

// Mode selects between the real chain/identity path and the development
// short-circuit. It is consulted only inside the transaction, yield and
// collaborator-factory code; handlers never branch on it.
type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Identity IdentityConfig
	Starknet StarknetConfig
	Security SecurityConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
	Mode Mode
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// IdentityConfig holds identity provider configuration
type IdentityConfig struct {
	AppID string
	// VerificationKey is the provider's ES256 public key in PEM form,
	// used to verify identity assertions locally.
	VerificationKey string
	// DevSecret signs locally minted development assertions.
	DevSecret string
}

// StarknetConfig holds chain and token configuration
type StarknetConfig struct {
	Network                string
	RPCURL                 string
	PaymasterAPIKey        string
	TreasuryAddress        string
	IntegratorFeeBps       int
	StakingContractAddress string
	StakingEntrypoint      string
	StakingTokenAddress    string
	USDCTokenAddress       string
	LBTCTokenAddress       string
	SwapBaseURL            string
	OnrampBaseURL          string
}

// SecurityConfig holds encryption keys
type SecurityConfig struct {
	// KeyVaultSecret derives the key that seals custodial private scalars
	// at rest.
	KeyVaultSecret string
}

// Load loads configuration from environment variables
func Load() *Config {
	mode := ModeProduction
	if getEnvAsBool("DEV_MODE", true) {
		mode = ModeDevelopment
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3001"),
			Env:  getEnv("SERVER_ENV", "development"),
			Mode: mode,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "btcyield"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Identity: IdentityConfig{
			AppID:           getEnv("IDENTITY_APP_ID", ""),
			VerificationKey: getEnv("IDENTITY_VERIFICATION_KEY", ""),
			DevSecret:       getEnv("IDENTITY_DEV_SECRET", "dev-secret-change-me"),
		},
		Starknet: StarknetConfig{
			Network:                getEnv("STARKNET_NETWORK", "mainnet"),
			RPCURL:                 getEnv("STARKNET_RPC_URL", "https://starknet-mainnet.public.blastapi.io"),
			PaymasterAPIKey:        getEnv("PAYMASTER_API_KEY", ""),
			TreasuryAddress:        getEnv("TREASURY_ADDRESS", ""),
			IntegratorFeeBps:       getEnvAsInt("INTEGRATOR_FEE_BPS", 10),
			StakingContractAddress: getEnv("BTC_STAKING_CONTRACT_ADDRESS", ""),
			StakingEntrypoint:      getEnv("BTC_STAKING_ENTRYPOINT", "stake"),
			StakingTokenAddress:    getEnv("BTC_STAKING_TOKEN_ADDRESS", ""),
			USDCTokenAddress:       getEnv("USDC_TOKEN_ADDRESS", ""),
			LBTCTokenAddress:       getEnv("LBTC_TOKEN_ADDRESS", ""),
			SwapBaseURL:            getEnv("SWAP_BASE_URL", "https://starknet.api.avnu.fi"),
			OnrampBaseURL:          getEnv("ONRAMP_BASE_URL", "https://example.com/onramp"),
		},
		Security: SecurityConfig{
			KeyVaultSecret: getEnv("KEY_VAULT_SECRET", "0000000000000000000000000000000000000000000000000000000000000000"),
		},
	}
}

// ExplorerURL returns the block explorer link for a transaction hash
func (c StarknetConfig) ExplorerURL(hash string) string {
	base := "https://starkscan.co"
	if c.Network == "sepolia" {
		base = "https://sepolia.starkscan.co"
	}
	return base + "/tx/" + hash
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
