package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap/zapcore"

	"github.com/okian/quickmed/internal/config"
	"github.com/okian/quickmed/internal/domain/calculator"
	"github.com/okian/quickmed/internal/domain/types"
	"github.com/okian/quickmed/pkg/logger"
)

func run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCalculatorsCommand(t *testing.T) {
	Convey("Given the calculators command", t, func() {
		Convey("When run without a query", func() {
			out, _, err := run("calculators", "--store", "memory")

			Convey("Then every calculator should be listed", func() {
				So(err, ShouldBeNil)
				for _, info := range calculator.Catalog() {
					So(out, ShouldContainSubstring, info.Name)
				}
			})
		})

		Convey("When run with a query", func() {
			out, _, err := run("calculators", "score", "--store", "memory")

			Convey("Then only matching calculators should be listed", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "Wells Score (DVT)")
				So(out, ShouldContainSubstring, "APGAR Score")
				So(out, ShouldNotContainSubstring, "BMI Calculator")
			})
		})

		Convey("When nothing matches", func() {
			out, _, err := run("list", "xyz", "--store", "memory")

			Convey("Then it should say so", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, `no calculators match "xyz"`)
			})
		})
	})
}

func TestCalcCommand(t *testing.T) {
	Convey("Given the calc command on a sqlite file", t, func() {
		dsn := filepath.Join(t.TempDir(), "notes.db")

		Convey("When running BMI with repeated inputs", func() {
			out, stderr, err := run("calc", "bmi", "-i", "weight_kg=70", "-i", "height_cm=170",
				"--store", "sqlite", "--dsn", dsn)

			Convey("Then the result and record number should be printed", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "BMI: 24.2 | Category: Normal weight")
				So(out, ShouldContainSubstring, "Saved as record #1")
				So(stderr, ShouldBeEmpty)
			})

			Convey("And a second run should append the next record", func() {
				out, _, err := run("calc", "gcs", "-i", "eye=4,verbal=5,motor=6",
					"--store", "sqlite", "--dsn", dsn)
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "Saved as record #2")
			})
		})

		Convey("When running with JSON output", func() {
			out, _, err := run("calc", "chads2", "-i", "hypertension=yes", "-i", "diabetes=yes",
				"--json", "--note", "AF clinic", "--store", "sqlite", "--dsn", dsn)

			Convey("Then the response should decode", func() {
				So(err, ShouldBeNil)
				var resp types.CalculationResponse
				So(json.Unmarshal([]byte(out), &resp), ShouldBeNil)
				So(resp.Calculator, ShouldEqual, "chads2")
				So(resp.Value, ShouldEqual, 2.0)
				So(resp.Category, ShouldEqual, calculator.CHADS2Moderate)
				So(resp.Persisted, ShouldBeTrue)
				So(resp.RecordID, ShouldEqual, int64(1))
			})
		})

		Convey("When an input is invalid", func() {
			_, _, err := run("calc", "bmi", "-i", "weight_kg=0", "-i", "height_cm=170",
				"--store", "sqlite", "--dsn", dsn)

			Convey("Then the command should fail with a validation error", func() {
				So(errors.Is(err, calculator.ErrInvalidInput), ShouldBeTrue)
			})
		})

		Convey("When the calculator is unknown", func() {
			_, _, err := run("calc", "heart", "--store", "sqlite", "--dsn", dsn)

			Convey("Then the command should fail", func() {
				So(errors.Is(err, calculator.ErrUnknownCalculator), ShouldBeTrue)
			})
		})

		Convey("When the calculator argument is missing", func() {
			_, _, err := run("calc", "--store", "memory")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given the postgres store flag without a DSN", t, func() {
		_, _, err := run("calc", "bmi", "--store", "postgres")

		Convey("Then setup should reject the configuration", func() {
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "store_dsn")
		})
	})

	Convey("Given an unknown store flag", t, func() {
		_, _, err := run("calc", "bmi", "--store", "redis")

		Convey("Then setup should fail", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "redis")
		})
	})
}

func TestNoteCommand(t *testing.T) {
	Convey("Given the note command", t, func() {
		dsn := filepath.Join(t.TempDir(), "notes.db")

		Convey("When recording a note from several words", func() {
			out, _, err := run("note", "Allergic", "to", "penicillin", "--store", "sqlite", "--dsn", dsn)

			Convey("Then the record number should be printed", func() {
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "Note saved as record #1\n")
			})
		})

		Convey("When the note is blank", func() {
			_, _, err := run("note", "   ", "--store", "memory")

			Convey("Then it should be rejected", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestLogLevelLayering(t *testing.T) {
	Convey("Given a log level in the environment", t, func() {
		_ = os.Setenv("QUICKMED_LOG_LEVEL", "error")
		defer func() {
			_ = os.Unsetenv("QUICKMED_LOG_LEVEL")
			logger.SetLevel(zapcore.InfoLevel)
		}()

		Convey("When no --log-level flag is given", func() {
			_, _, err := run("calculators", "--store", "memory")

			Convey("Then the configured level should apply", func() {
				So(err, ShouldBeNil)
				So(logger.Level(), ShouldEqual, zapcore.ErrorLevel)
			})
		})

		Convey("When --log-level is given", func() {
			_, _, err := run("calculators", "--store", "memory", "--log-level", "debug")

			Convey("Then the flag should override the config", func() {
				So(err, ShouldBeNil)
				So(logger.Level(), ShouldEqual, zapcore.DebugLevel)
			})
		})

		Convey("When --log-level names a level the logger does not support", func() {
			_, _, err := run("calculators", "--store", "memory", "--log-level", "fatal")

			Convey("Then setup should fail", func() {
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}
