package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/gullylabs/gully/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			// Clear any existing environment variables
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8501")
				convey.So(cfg.MatchesPath, convey.ShouldEqual, "data/matches.csv")
				convey.So(cfg.DeliveriesPath, convey.ShouldEqual, "data/deliveries.csv")
				convey.So(cfg.ChartWidth, convey.ShouldEqual, 1000)
				convey.So(cfg.ChartHeight, convey.ShouldEqual, 600)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			// Set environment variables
			_ = os.Setenv("GULLY_ADDR", ":8080")
			_ = os.Setenv("GULLY_MATCHES_PATH", "/srv/ipl/matches.csv")
			_ = os.Setenv("GULLY_DELIVERIES_PATH", "/srv/ipl/deliveries.csv")
			_ = os.Setenv("GULLY_CHART_WIDTH", "1280")
			_ = os.Setenv("GULLY_CHART_HEIGHT", "720")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MatchesPath, convey.ShouldEqual, "/srv/ipl/matches.csv")
				convey.So(cfg.DeliveriesPath, convey.ShouldEqual, "/srv/ipl/deliveries.csv")
				convey.So(cfg.ChartWidth, convey.ShouldEqual, 1280)
				convey.So(cfg.ChartHeight, convey.ShouldEqual, 720)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			// Create a temporary YAML config file
			yamlContent := `
addr: ":9090"
matches_path: "testdata/matches.csv"
deliveries_path: "testdata/deliveries.csv"
chart_width: 800
chart_height: 480
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			// Set the config file path
			_ = os.Setenv("GULLY_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.MatchesPath, convey.ShouldEqual, "testdata/matches.csv")
				convey.So(cfg.DeliveriesPath, convey.ShouldEqual, "testdata/deliveries.csv")
				convey.So(cfg.ChartWidth, convey.ShouldEqual, 800)
				convey.So(cfg.ChartHeight, convey.ShouldEqual, 480)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			// Create a YAML config file
			yamlContent := `
addr: ":9090"
matches_path: "testdata/matches.csv"
chart_width: 800
chart_height: 480
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			// Set both file and environment variables
			_ = os.Setenv("GULLY_CONFIG", tmpFile)
			_ = os.Setenv("GULLY_ADDR", ":8080")       // This should override the file
			_ = os.Setenv("GULLY_CHART_WIDTH", "1920") // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")                        // Overridden by env
				convey.So(cfg.MatchesPath, convey.ShouldEqual, "testdata/matches.csv")  // From file
				convey.So(cfg.ChartWidth, convey.ShouldEqual, 1920)                     // Overridden by env
				convey.So(cfg.ChartHeight, convey.ShouldEqual, 480)                     // From file
				convey.So(cfg.DeliveriesPath, convey.ShouldEqual, "data/deliveries.csv") // From defaults
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			// Create an invalid YAML file
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("GULLY_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err, convey.ShouldWrap, config.ErrLoadConfig)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("GULLY_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err, convey.ShouldWrap, config.ErrLoadConfig)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("GULLY_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with partial YAML file", func() {
			// Create a YAML file with only some fields
			yamlContent := `
addr: ":9090"
chart_width: 640
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("GULLY_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should merge with defaults for missing fields", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")                         // From file
				convey.So(cfg.ChartWidth, convey.ShouldEqual, 640)                       // From file
				convey.So(cfg.MatchesPath, convey.ShouldEqual, "data/matches.csv")       // From defaults
				convey.So(cfg.DeliveriesPath, convey.ShouldEqual, "data/deliveries.csv") // From defaults
				convey.So(cfg.ChartHeight, convey.ShouldEqual, 600)                      // From defaults
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("GULLY_CHART_WIDTH", "wide")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestConfigLoaderEdgeCases(t *testing.T) {
	convey.Convey("Given config loader edge cases", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with zero chart dimensions", func() {
			_ = os.Setenv("GULLY_CHART_WIDTH", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
				convey.So(err.Error(), convey.ShouldContainSubstring, "chart dimensions")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with negative chart dimensions", func() {
			_ = os.Setenv("GULLY_CHART_HEIGHT", "-600")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an empty matches path", func() {
			_ = os.Setenv("GULLY_MATCHES_PATH", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "matches_path")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an empty deliveries path", func() {
			_ = os.Setenv("GULLY_DELIVERIES_PATH", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "deliveries_path")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with special characters in addr", func() {
			_ = os.Setenv("GULLY_ADDR", "localhost:8080")
			_ = os.Setenv("GULLY_ADDR", "0.0.0.0:9090")
			_ = os.Setenv("GULLY_ADDR", "[::1]:8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should handle various addr formats", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, "[::1]:8080") // Last one wins
			})
		})

		convey.Convey("When loading config with YAML file containing comments", func() {
			yamlContent := `
# This is a comment
addr: ":9090"  # Inline comment
chart_width: 800
# Another comment
chart_height: 480
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("GULLY_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should parse YAML with comments", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.ChartWidth, convey.ShouldEqual, 800)
				convey.So(cfg.ChartHeight, convey.ShouldEqual, 480)
			})
		})

		convey.Convey("When loading config with YAML file containing empty values", func() {
			yamlContent := `
addr: ""
chart_width: 800
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("GULLY_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return validation error for empty addr", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"GULLY_CONFIG",
		"GULLY_ADDR",
		"GULLY_MATCHES_PATH",
		"GULLY_DELIVERIES_PATH",
		"GULLY_CHART_WIDTH",
		"GULLY_CHART_HEIGHT",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "gully-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
