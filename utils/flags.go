// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package utils

import "github.com/urfave/cli/v2"

// Command line options for common flags in distgen applications.
var (
	NumbersFlag = cli.StringFlag{
		Name:  "numbers",
		Usage: "allowed numbers of the distribution, separated by commas or spaces",
		Value: "-1,0,1,2,3",
	}
	ProbabilitiesFlag = cli.StringFlag{
		Name:  "probabilities",
		Usage: "probability of each allowed number, separated by commas or spaces",
		Value: "0.01,0.3,0.58,0.1,0.01",
	}
	IterationsFlag = cli.IntFlag{
		Name:  "iterations",
		Usage: "number of random numbers to generate",
		Value: 10000,
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "seed of the random generator (0 seeds from the clock)",
		Value: 0,
	}
	WorkersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "number of goroutines drawing numbers concurrently",
		Value: 1,
	}
	AlphaFlag = cli.Float64Flag{
		Name:  "alpha",
		Usage: "significance level of the chi-squared goodness-of-fit test",
		Value: 0.05,
	}
	TraceFileFlag = cli.PathFlag{
		Name:  "trace-file",
		Usage: "gzip file recording every generated number",
	}
	OutputFlag = cli.PathFlag{
		Name:  "output",
		Usage: "file the occurrence report is appended to",
	}
	ReportDbFlag = cli.PathFlag{
		Name:  "report-db",
		Usage: "sqlite3 database the occurrence report is inserted into",
	}
	ChartFlag = cli.PathFlag{
		Name:  "chart",
		Usage: "html file rendering observed and expected frequencies",
	}
	QuietFlag = cli.BoolFlag{
		Name:  "quiet",
		Usage: "disable printing the report to the console",
	}
)
