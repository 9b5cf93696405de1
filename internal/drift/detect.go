// FILE: detect.go
package drift

import (
	"log"

	"quantcore/internal/metrics"
	"quantcore/internal/types"
)

// FeatureDriftReport is the full per-feature drift measurement: the raw
// PSI/KS/Wasserstein statistics plus the derived severity verdict.
type FeatureDriftReport struct {
	FeatureName string
	PSI         float64
	KSStat      float64
	KSPValue    float64
	Wasserstein float64
	Severity    types.Severity
	Drifted     bool
}

// DetectFeatureDrift slices the tail of a chronologically ordered combined
// series into an older reference slab of size refSize and the most recent
// current slab of size curSize, computes PSI/KS/Wasserstein between them,
// and classifies severity per spec §4.6's strict thresholds: PSI < 0.1
// with KS p > 0.05 -> none; PSI < 0.2 -> low; PSI < 0.25 -> medium;
// otherwise high. Any non-none severity sets Drifted = true.
func DetectFeatureDrift(name string, series []float64, refSize, curSize, bins int) FeatureDriftReport {
	n := len(series)
	if curSize > n {
		curSize = n
	}
	curStart := n - curSize
	refStart := curStart - refSize
	if refStart < 0 {
		refStart = 0
	}

	reference := series[refStart:curStart]
	current := series[curStart:n]

	psi := PSI(reference, current, bins)
	ksStat, ksP := KS(reference, current)
	wass := Wasserstein1(reference, current)

	sev := classifySeverity(psi, ksP)
	report := FeatureDriftReport{
		FeatureName: name,
		PSI:         psi,
		KSStat:      ksStat,
		KSPValue:    ksP,
		Wasserstein: wass,
		Severity:    sev,
		Drifted:     sev != types.SeverityNone,
	}

	metrics.ObserveDrift(sev)
	if report.Drifted {
		log.Printf("[drift] feature=%s severity=%s psi=%.4f ks_stat=%.4f ks_pvalue=%.4f wasserstein1=%.4f",
			name, sev, psi, ksStat, ksP, wass)
	}
	return report
}

func classifySeverity(psi, ksPValue float64) types.Severity {
	switch {
	case psi < 0.1 && ksPValue > 0.05:
		return types.SeverityNone
	case psi < 0.2:
		return types.SeverityLow
	case psi < 0.25:
		return types.SeverityMedium
	default:
		return types.SeverityHigh
	}
}

// ToDriftResults expands a FeatureDriftReport into the generic
// types.DriftResult records used by internal/metrics for observability.
func (r FeatureDriftReport) ToDriftResults(timeNS int64) []types.DriftResult {
	return []types.DriftResult{
		{FeatureName: r.FeatureName, MetricName: "psi", Value: r.PSI, Threshold: 0.1, Drifted: r.Drifted, Severity: r.Severity, TimeNS: timeNS},
		{FeatureName: r.FeatureName, MetricName: "ks_pvalue", Value: r.KSPValue, Threshold: 0.05, Drifted: r.Drifted, Severity: r.Severity, TimeNS: timeNS},
		{FeatureName: r.FeatureName, MetricName: "wasserstein1", Value: r.Wasserstein, Threshold: 0, Drifted: r.Drifted, Severity: r.Severity, TimeNS: timeNS},
	}
}
