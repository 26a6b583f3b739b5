package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/marquee/internal/catalog"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLegalCommand(t *testing.T) {
	out, err := execute(t, "legal", "--width", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "Disclaimer")
	assert.Contains(t, out, "Advertisements")
}

func TestReadCommand_RequiresIDs(t *testing.T) {
	_, err := execute(t, "read")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--all")
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	_, err := execute(t, "unexpected")
	assert.Error(t, err)
}

func TestTopTen_FiltersByKind(t *testing.T) {
	var items []catalog.Title
	for i := range 14 {
		kind := "movie"
		if i%2 == 1 {
			kind = "tv"
		}
		items = append(items, catalog.Title{ID: int64(i), MediaType: kind})
	}

	assert.Len(t, topTen(items, "all"), 10)
	shows := topTen(items, "TV")
	assert.Len(t, shows, 7)
	for _, item := range shows {
		assert.Equal(t, "tv", item.MediaKind())
	}
}

func TestPrintTitles(t *testing.T) {
	var out bytes.Buffer
	printTitles(&out, []catalog.Title{{ID: 1, Title: "Arrival", ReleaseDate: "2016-11-11", VoteAverage: 7.9}})
	line := strings.TrimSpace(out.String())
	assert.Contains(t, line, "Arrival")
	assert.Contains(t, line, "2016")
	assert.Contains(t, line, "7.9")

	out.Reset()
	printTitles(&out, nil)
	assert.Contains(t, out.String(), "(none)")
}
