package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/gridstat/Cli"
	"github.com/g-m-twostay/gridstat/Stations"
)

const grid = `1;0;30;10;lv
2;0;10;25;lv
3;7;50;0;lv
4;7;20;20;hva
not;a;station;at;all
2;0;99;99;lv
5;7;5;1;lv
`

func testOptions(t *testing.T, class, consumer string) *options {
	dir := t.TempDir()
	input := filepath.Join(dir, "grid.csv")
	require.NoError(t, os.WriteFile(input, []byte(grid), 0644))
	o := &options{ExtremesOutput: filepath.Join(dir, "minmax.csv"), MaxStations: 100}
	o.Args.Input = input
	o.Args.Output = filepath.Join(dir, "out.csv")
	o.Args.Class = class
	o.Args.Consumer = consumer
	return o
}

func readFile(t *testing.T, filename string) string {
	b, err := os.ReadFile(filename)
	require.NoError(t, err)
	return string(b)
}

func TestRun(t *testing.T) {
	for _, mmap := range []bool{false, true} {
		o := testOptions(t, "lv", "all")
		o.MMap = mmap
		code, err := run(o)
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Equal(t, `Station:Capacity:Consumption:Status
5:5:1:Surplus
2:10:25:Deficit
1:30:10:Surplus
3:50:0:Surplus
`, readFile(t, o.Args.Output))
		assert.Equal(t, `Most loaded stations:
3:50:0
1:30:10
2:10:25
5:5:1

Least loaded stations:
5:5:1
2:10:25
1:30:10
3:50:0
`, readFile(t, o.ExtremesOutput))
	}
}

func TestRunCompaniesUnderParent(t *testing.T) {
	o := testOptions(t, "lv", "comp")
	o.Args.Parent = "7"
	_, err := run(o)
	require.NoError(t, err)
	assert.Equal(t, "Station:Capacity:Consumption:Status\n5:5:1:Surplus\n", readFile(t, o.Args.Output))
	assert.NoFileExists(t, o.ExtremesOutput)
}

func TestRunOtherClass(t *testing.T) {
	o := testOptions(t, "hva", "all")
	_, err := run(o)
	require.NoError(t, err)
	assert.Equal(t, "Station:Capacity:Consumption:Status\n4:20:20:Surplus\n", readFile(t, o.Args.Output))
	assert.NoFileExists(t, o.ExtremesOutput)
}

func TestRunTooManyStations(t *testing.T) {
	o := testOptions(t, "lv", "all")
	o.MaxStations = 3
	code, err := run(o)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Station:Capacity:Consumption:Status\n", readFile(t, o.Args.Output))
	assert.Empty(t, readFile(t, o.ExtremesOutput))
}

func TestRunUsageErrors(t *testing.T) {
	o := testOptions(t, "lv", "everyone")
	code, err := run(o)
	assert.Error(t, err)
	assert.Equal(t, ErrUsage, code)

	o = testOptions(t, "lv", "all")
	o.Args.Parent = "seven"
	code, err = run(o)
	assert.Error(t, err)
	assert.Equal(t, ErrUsage, code)
	assert.NoFileExists(t, o.Args.Output)
}

func TestRunFileErrors(t *testing.T) {
	o := testOptions(t, "lv", "all")
	o.Args.Input = filepath.Join(t.TempDir(), "missing.csv")
	code, err := run(o)
	assert.Error(t, err)
	assert.Equal(t, ErrFileOpen, code)

	o = testOptions(t, "lv", "all")
	o.Args.Output = filepath.Join(t.TempDir(), "no", "such", "dir", "out.csv")
	code, err = run(o)
	assert.Error(t, err)
	assert.Equal(t, ErrFileOpen, code)
}

func TestRunNoParentFilter(t *testing.T) {
	o := testOptions(t, "lv", "indiv")
	o.Args.Parent = "-1"
	_, err := run(o)
	require.NoError(t, err)
	assert.Equal(t, "Station:Capacity:Consumption:Status\n5:5:1:Surplus\n2:10:25:Deficit\n1:30:10:Surplus\n", readFile(t, o.Args.Output))
}

func TestParseParentSentinel(t *testing.T) {
	var o options
	_, err := Cli.ParseFlags("gridstat", &o, []string{"--max_stations", "5", "in.csv", "out.csv", "lv", "all", "-1"})
	require.NoError(t, err)
	assert.Equal(t, "-1", o.Args.Parent)
	assert.EqualValues(t, 5, o.MaxStations)
	f, err := newFilter(&o)
	require.NoError(t, err)
	assert.Equal(t, Stations.NoParent, f.Parent)
}
