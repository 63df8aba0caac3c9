package file

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/sortcell/internal/domain"
)

// Parse reads one "time angle" pair per line. Columns may be separated by
// whitespace or a comma; blank lines and lines starting with '#' are skipped.
// Times are seconds and must fit a time.Duration.
func Parse(name string, r io.Reader) (domain.DumpProfile, error) {
	profile := domain.DumpProfile{Name: name}

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) != 2 {
			return domain.DumpProfile{}, fmt.Errorf("%w: %s line %d: want 2 columns, got %d", domain.ErrMalformedProfile, name, lineNo, len(fields))
		}

		seconds, err := strconv.ParseFloat(fields[0], 64)
		if err != nil || math.IsNaN(seconds) || seconds < 0 || seconds*float64(time.Second) >= math.MaxInt64 {
			return domain.DumpProfile{}, fmt.Errorf("%w: %s line %d: bad time %q", domain.ErrMalformedProfile, name, lineNo, fields[0])
		}
		angle, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || math.IsNaN(angle) {
			return domain.DumpProfile{}, fmt.Errorf("%w: %s line %d: bad angle %q", domain.ErrMalformedProfile, name, lineNo, fields[1])
		}

		profile.Points = append(profile.Points, domain.ProfilePoint{
			At:    time.Duration(math.Round(seconds * float64(time.Second))),
			Angle: angle,
		})
	}
	if err := scanner.Err(); err != nil {
		return domain.DumpProfile{}, fmt.Errorf("read dump profile %s: %w", name, err)
	}

	return profile, nil
}

// Format writes profile in the layout Parse accepts.
func Format(w io.Writer, profile domain.DumpProfile) error {
	for _, point := range profile.Points {
		if _, err := fmt.Fprintf(w, "%g %g\n", point.At.Seconds(), point.Angle); err != nil {
			return err
		}
	}
	return nil
}
