// Package config provides configuration management for the Inventory Bridge.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: trigger HTTP server settings (port, API key, webhook signing)
//   - ERP / FSM: base URLs and timeouts for the two platform clients
//   - Store: snapshot store backend (dynamodb or mysql) and table name
//   - Notify: SNS topic for purchase-order summaries
//   - Secrets: credential source (env or AWS Secrets Manager)
//   - Archive: object storage for run reports
//   - Jobs: per-job enablement and trigger intervals
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
