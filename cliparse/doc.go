// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - IDLength: Length of poll and item ids, 4-32 (default: 8)
  - MaxTextLength: Longest title, description, item or user id (default: 500)
  - StreamInterval: How often result streams look for changes (default: 1s)
  - EnvFile: dotenv file read before the environment (default: .env)

# Sources

CLI flags take precedence over environment variables, which take precedence
over defaults:

	PORT            → -p
	ID_LENGTH       → -id-length
	MAX_TEXT_LENGTH → -max-text
	STREAM_INTERVAL → -stream-interval

The env file never overrides variables that are already set, and a missing
file is ignored.
*/
package cliparse
