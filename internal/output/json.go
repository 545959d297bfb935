package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/golfx/internal/types"
)

// Version is the report format version stamped into JSON headers.
const Version = "1.0.0"

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	quiet      bool
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter(quiet bool, indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		quiet:      quiet,
		indent:     indent,
		outputFile: outputFile,
	}
}

// Format writes the leaderboard report as JSON to the output file or stdout.
func (f *JSONFormatter) Format(report *Report) error {
	out := JSONReport{
		Header: JSONHeader{
			Tool:      "golfx",
			Version:   Version,
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Game: JSONGame{
			ID:     report.GameID,
			Name:   report.GameName,
			Course: report.CourseName,
			Source: report.Source,
		},
		Leaderboard: report.Result,
	}

	return f.write(out)
}

// FormatPMP writes the allocation table as JSON.
func (f *JSONFormatter) FormatPMP(report *PMPReport) error {
	out := JSONPMPReport{
		Header: JSONHeader{
			Tool:      "golfx",
			Version:   Version,
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Game: JSONGame{
			Name:   report.GameName,
			Course: report.CourseName,
		},
		Participants: report.Participants,
		Allocation:   report.Table,
	}

	return f.write(out)
}

func (f *JSONFormatter) write(v any) error {
	var jsonBytes []byte
	var err error

	if f.indent {
		jsonBytes, err = json.MarshalIndent(v, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0o644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}

	fmt.Println(string(jsonBytes))
	return nil
}

// JSONReport is the complete leaderboard report structure.
type JSONReport struct {
	Header      JSONHeader              `json:"header"`
	Game        JSONGame                `json:"game"`
	Leaderboard types.LeaderboardResult `json:"leaderboard"`
}

// JSONPMPReport is the complete allocation report structure.
type JSONPMPReport struct {
	Header       JSONHeader                         `json:"header"`
	Game         JSONGame                           `json:"game"`
	Participants []types.Participant                `json:"participants"`
	Allocation   map[string][]types.PlayerMatchPar  `json:"allocation"`
}

// JSONHeader contains report metadata.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONGame identifies the reported game.
type JSONGame struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Course string `json:"course,omitempty"`
	Source string `json:"source,omitempty"`
}
