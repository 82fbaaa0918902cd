package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			metricPrefixOpt := WithMetricPrefix("test-prefix")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)
			customLabelsOpt := WithCustomLabels(map[string]string{"env": "test"})

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(metricPrefixOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
				So(customLabelsOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewMetricsManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewMetricsManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithRefreshInterval(10*time.Second),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the package-level helpers", t, func() {
		Convey("When recording dataset metrics", func() {
			So(func() {
				RecordDatasetLoad(636, 150460, 120*time.Millisecond)
				RecordDatasetLoadError()
			}, ShouldNotPanic)
		})

		Convey("When recording ranking metrics", func() {
			So(func() {
				RecordRankingComputed("batsmen", 3*time.Millisecond)
				RecordRankingComputed("bowlers", 2*time.Millisecond)
				RecordRankingComputed("teams", time.Millisecond)
				RecordRankingError("batsmen")
			}, ShouldNotPanic)
		})

		Convey("When recording chart metrics", func() {
			So(func() {
				RecordChartRender("teams", 40*time.Millisecond)
				RecordChartRenderError("teams")
			}, ShouldNotPanic)
		})

		Convey("When recording HTTP metrics", func() {
			So(func() {
				RecordHTTPRequest("/api/rankings", "GET", "200")
				RecordHTTPRequestDuration("/api/rankings", "GET", "200", 12.5)
				IncHTTPInFlight()
				DecHTTPInFlight()
			}, ShouldNotPanic)
		})

		Convey("When recording error and system metrics", func() {
			So(func() {
				RecordErrorByComponent("dataset", "load_error")
				UpdateSystemMemoryUsage(64 << 20)
				UpdateSystemGoroutineCount(12)
				RecordSystemGCPauseTime(0.8)
				UpdateUptime(3600)
			}, ShouldNotPanic)
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the custom registry", t, func() {
		Convey("When gathering after recording", func() {
			RecordDatasetLoad(10, 20, time.Millisecond)
			families, err := GetRegistry().Gather()

			Convey("Then the dashboard metrics are registered", func() {
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["gully_dashboard_dataset_loads_total"], ShouldBeTrue)
				So(names["gully_dashboard_dataset_rows"], ShouldBeTrue)
			})
		})
	})
}
