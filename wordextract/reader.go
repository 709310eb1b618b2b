package wordextract

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/libraz/suzume-feedmill/errs"
	"github.com/libraz/suzume-feedmill/logging"
	"github.com/libraz/suzume-feedmill/pmi"
)

// ReadPMIResults reads a PMI-results file in the TSV format
// pmi.WriteTSV produces: ngram, score, frequency, tab-separated, one
// row per line, with an optional header row detected by the literal
// substring "ngram". A line that doesn't parse as three tab-separated
// fields, a non-numeric score, or a non-numeric/negative frequency is
// logged and skipped rather than aborting the read. An empty file or a
// file with zero accepted rows is a valid, empty result. A missing
// file is an unrecoverable error.
func ReadPMIResults(path string, logger logging.Logger) ([]pmi.Score, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.New("wordextract.ReadPMIResults", errs.NotFound, path, err)
		}
		return nil, errs.NewIO("wordextract.ReadPMIResults", errs.Generic, path, err)
	}
	defer f.Close()

	var scores []pmi.Score
	scanner := bufio.NewScanner(f)
	headerChecked := false

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if !headerChecked {
			headerChecked = true
			if strings.Contains(line, "ngram") {
				continue
			}
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			logger.Warn("wordextract: skipping malformed PMI result line", logging.String("line", line))
			continue
		}

		score, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			logger.Warn("wordextract: skipping PMI result with unparsable score", logging.String("line", line))
			continue
		}

		freq, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil || freq < 0 {
			logger.Warn("wordextract: skipping PMI result with unparsable frequency", logging.String("line", line))
			continue
		}

		scores = append(scores, pmi.Score{Ngram: fields[0], PMI: score, Frequency: freq})
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.NewIO("wordextract.ReadPMIResults", errs.Generic, path, err)
	}

	return scores, nil
}
