package bundle

import (
	"encoding/xml"

	"github.com/webbfontaine/i18n-asset-pipeline/internal/properties"
)

// Java XML properties format: <properties><entry key="...">value</entry>...
type xmlProperties struct {
	XMLName xml.Name   `xml:"properties"`
	Entries []xmlEntry `xml:"entry"`
}

type xmlEntry struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

func parseXML(raw []byte) (*properties.Table, error) {
	var doc xmlProperties
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	table := properties.NewTable()
	for _, e := range doc.Entries {
		if e.Key == "" {
			continue
		}
		table.Set(e.Key, e.Value)
	}
	return table, nil
}
