package report

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/bnema/sortcell/internal/application"
	"github.com/bnema/sortcell/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

func renderRun(summary application.RunSummary, batches []application.BatchReport, limits domain.BatchLimits, s styles) string {
	lines := []string{
		s.title.Render("Sortcell Run"),
		s.header.Render(fmt.Sprintf("run: %s", summary.RunID)),
		s.header.Render(fmt.Sprintf("cycles: %d  containers: %d  mass: %.2fg  empty trips: %d",
			summary.Cycles, summary.Containers, summary.TotalMass, summary.EmptyTrips)),
	}

	if len(summary.Deliveries) > 0 {
		bins := make([]domain.BinID, 0, len(summary.Deliveries))
		for bin := range summary.Deliveries {
			bins = append(bins, bin)
		}
		slices.Sort(bins)

		deliveries := make([]string, 0, len(bins))
		for _, bin := range bins {
			deliveries = append(deliveries, fmt.Sprintf("%s=%d", bin, summary.Deliveries[bin]))
		}
		lines = append(lines, s.detail.Render("deliveries: "+strings.Join(deliveries, " ")))
	}

	if len(batches) == 0 {
		if summary.Cycles == 0 {
			lines = append(lines, s.empty.Render("No batches delivered."))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, batch := range batches {
		lines = append(lines, s.section.Render(renderBatch(batch, limits, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBatch(report application.BatchReport, limits domain.BatchLimits, s styles) string {
	parts := []string{
		s.bin.Render(fmt.Sprintf("Batch %d -> %s", report.Cycle, report.Destination)),
		massLine(report, limits, s),
	}

	if report.Empty() {
		parts = append(parts, s.warning.Render("empty trip: first container exceeds the batch budget"))
	}
	for i, item := range report.Items {
		parts = append(parts, s.detail.Render(fmt.Sprintf("  %d. %s", i+1, item)))
	}

	parts = append(parts, s.meta.Render(fmt.Sprintf("next: %s", report.Next)))
	if elapsed := report.FinishedAt.Sub(report.StartedAt); !report.StartedAt.IsZero() && elapsed > 0 {
		parts = append(parts, s.meta.Render(fmt.Sprintf("cycle time: %s", elapsed.Round(time.Millisecond))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func massLine(report application.BatchReport, limits domain.BatchLimits, s styles) string {
	label := s.key.Render("load:")
	bar := renderBar(report.TotalMass, limits.MaxMass, barWidth, s)
	meta := s.meta.Render(fmt.Sprintf("%.2f/%.0fg  %d/%d items",
		report.TotalMass, limits.MaxMass, len(report.Items), limits.MaxCount))

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", bar, " ", meta)
}

func renderProfile(profile domain.DumpProfile, s styles) string {
	lines := []string{
		s.title.Render("Dump Profile: " + profile.Name),
		s.header.Render(fmt.Sprintf("points: %d  duration: %s  max angle: %.1f",
			len(profile.Points), profile.Duration(), profile.MaxAngle())),
	}

	if len(profile.Points) == 0 {
		lines = append(lines, s.empty.Render("No points."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	full := profile.MaxAngle()
	for _, point := range profile.Points {
		line := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.key.Render(fmt.Sprintf("%7.2fs", point.At.Seconds())),
			" ",
			renderBar(point.Angle, full, barWidth, s),
			" ",
			s.meta.Render(fmt.Sprintf("%5.1f", point.Angle)),
		)
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderLayout(layout domain.Layout, source string, s styles) string {
	if source == "" {
		source = "built-in defaults"
	}

	lines := []string{
		s.title.Render("Workcell Layout"),
		s.header.Render("source: " + source),
		s.section.Render(s.bin.Render("Batch")),
		s.detail.Render(fmt.Sprintf("max mass: %.2fg  max count: %d", layout.Limits.MaxMass, layout.Limits.MaxCount)),
		s.section.Render(s.bin.Render("Bins")),
	}

	if len(layout.Bins) == 0 {
		lines = append(lines, s.empty.Render("any bin accepted"))
	}
	for _, bin := range layout.Bins {
		line := string(bin)
		if bin == layout.Approach.CrossingBin {
			line += " " + s.meta.Render("(crossing)")
		}
		lines = append(lines, s.detail.Render("  "+line))
	}

	lines = append(lines, s.section.Render(s.bin.Render("Slots")))
	for i, pose := range layout.Slots {
		lines = append(lines, s.detail.Render(fmt.Sprintf("  %d. %s", i+1, pose)))
	}

	t := layout.Transfer
	lines = append(lines,
		s.section.Render(s.bin.Render("Transfer")),
		keyValue("pickup", t.Pickup.String(), s),
		keyValue("lift", t.Lift.String(), s),
		keyValue("carry", t.Carry.String(), s),
		keyValue("gripper", fmt.Sprintf("close %.0f  open %.0f  elbow %.0f  settle %s", t.GripClose, t.GripOpen, t.ElbowTilt, t.GripSettle), s),
	)

	a := layout.Approach
	lines = append(lines,
		s.section.Render(s.bin.Render("Approach")),
		keyValue("thresholds", fmt.Sprintf("outer %.3f  inner %.3f  crossing %.3f", a.OuterThreshold, a.InnerThreshold, a.CrossingThreshold), s),
		keyValue("speeds", fmt.Sprintf("fast %.2f  slow %.2f  crossing %.2f  traverse %.2f  cruise %.2f  home %.2f",
			a.FastSpeed, a.SlowSpeed, a.CrossingSpeed, a.TraverseSpeed, a.CruiseSpeed, a.HomeSpeed), s),
		keyValue("dock", a.DockDuration.String(), s),
		keyValue("traverse", a.TraverseDuration.String(), s),
		keyValue("turn around", fmt.Sprintf("%.2f/%.2f for %s", a.TurnAround.Left, a.TurnAround.Right, a.TurnAroundDuration), s),
		keyValue("creep", fmt.Sprintf("%.3f", a.CreepDistance), s),
		keyValue("settle", a.Settle.String(), s),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func keyValue(key, value string, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render("  "+key+":"), " ", s.detail.Render(value))
}

func renderBar(value, full float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := 0
	if full > 0 {
		filled = int(math.Round(float64(width) * value / full))
	}
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}
