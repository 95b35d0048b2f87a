// Package endpoints expands named service categories into ordered mirror URLs.
//
// Mirror order encodes priority. Callers try entries in order and stop at the
// first success; nothing here performs network calls.
package endpoints

import (
	"fmt"
	"sort"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
)

// Base hosts shared by several categories.
const (
	PrimaryAPI      = "https://api.worldunited.gg"
	StaticMirror1   = "http://api-sbrw.davidcarbon.download"
	StaticMirror2   = "http://api2-sbrw.davidcarbon.download"
	CommunityMirror = "http://worldonline.pl"

	// FileServer and ModNetCDN are single-host services with no mirror list.
	FileServer = "https://files.worldunited.gg"
	ModNetCDN  = "https://cdn.soapboxrace.world"

	anticheatCommunity = "http://anticheat.worldonline.pl"
	anticheatLA1       = "http://la-sbrw.davidcarbon.download"
	anticheatLA2       = "http://la2-sbrw.davidcarbon.download"
)

// Category names.
const (
	ServerList      = "server-list"
	CDNList         = "cdn-list"
	AnticheatAuto   = "anticheat-auto"
	AnticheatManual = "anticheat-manual"
)

// Category is an ordered mirror list sharing one relative suffix.
type Category struct {
	Name    string
	Mirrors []string
	Suffix  string
}

// URLs returns mirror+suffix for every mirror in declared order.
func (c Category) URLs() []string {
	urls := make([]string, len(c.Mirrors))
	for i, mirror := range c.Mirrors {
		urls[i] = mirror + c.Suffix
	}
	return urls
}

var registry = map[string]Category{
	ServerList: {
		Name:    ServerList,
		Mirrors: []string{PrimaryAPI, StaticMirror1, StaticMirror2, CommunityMirror},
		Suffix:  "/serverlist.json",
	},
	CDNList: {
		Name:    CDNList,
		Mirrors: []string{PrimaryAPI, StaticMirror1, StaticMirror2, CommunityMirror},
		Suffix:  "/cdn_list.json",
	},
	AnticheatAuto: {
		Name:    AnticheatAuto,
		Mirrors: []string{PrimaryAPI, anticheatCommunity, anticheatLA1, anticheatLA2},
		Suffix:  "/report",
	},
	AnticheatManual: {
		Name:    AnticheatManual,
		Mirrors: []string{anticheatLA1, anticheatLA2},
		Suffix:  "/report-manual",
	},
}

// Lookup returns a copy of the named category.
func Lookup(name string) (Category, bool) {
	c, ok := registry[name]
	if !ok {
		return Category{}, false
	}
	c.Mirrors = append([]string(nil), c.Mirrors...)
	return c, true
}

// Resolve expands name into its ordered URL list.
// An unknown name is a programming error and panics.
func Resolve(name string) []string {
	c, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf(messages.EndpointsUnknownCategoryFmt, name))
	}
	return c.URLs()
}

// Names returns every category name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
