package dataset

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"area-accuracy/internal/area"
)

// AreaDocument：区域文档解码结果
type AreaDocument struct {
	Path    string
	Digest  uint64
	Entries []area.AreaEntry
}

type xmlBound struct {
	Dimension string `xml:"dimension,attr"`
	Value     string `xml:",chardata"`
}

type xmlArea struct {
	Prefix []string   `xml:"prefix"`
	Min    []xmlBound `xml:"min"`
	Max    []xmlBound `xml:"max"`
}

// LoadAreas：读取区域文档（arealist/area）
func LoadAreas(path string) (*AreaDocument, error) {
	r, digest, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	entries, err := DecodeAreas(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &AreaDocument{Path: path, Digest: digest, Entries: entries}, nil
}

// 文档注释：解码区域文档
// 约束：area 含多个 prefix 时取最后一个；缺少 prefix 时沿用上一个 area 的编码，首个 area 缺少 prefix 返回 ErrInvalidInput；
// min/max 的 dimension 属性与取值必须可解析。
func DecodeAreas(r io.Reader) ([]area.AreaEntry, error) {
	dec := xml.NewDecoder(r)
	var entries []area.AreaEntry
	inList := 0
	prefix := ""
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", area.ErrInvalidInput, err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "arealist" {
				inList++
				continue
			}
			if el.Name.Local != "area" || inList == 0 {
				continue
			}
			var a xmlArea
			if err := dec.DecodeElement(&a, &el); err != nil {
				return nil, fmt.Errorf("%w: area %d: %v", area.ErrInvalidInput, len(entries), err)
			}
			if len(a.Prefix) > 0 {
				prefix = strings.TrimSpace(a.Prefix[len(a.Prefix)-1])
			}
			if prefix == "" {
				return nil, fmt.Errorf("%w: area %d has no prefix", area.ErrInvalidInput, len(entries))
			}
			e := area.AreaEntry{Code: prefix}
			for _, b := range a.Min {
				bd, err := parseBound(b, area.Min)
				if err != nil {
					return nil, fmt.Errorf("%w: area %q: %v", area.ErrInvalidInput, prefix, err)
				}
				e.Boundaries = append(e.Boundaries, bd)
			}
			for _, b := range a.Max {
				bd, err := parseBound(b, area.Max)
				if err != nil {
					return nil, fmt.Errorf("%w: area %q: %v", area.ErrInvalidInput, prefix, err)
				}
				e.Boundaries = append(e.Boundaries, bd)
			}
			entries = append(entries, e)
		case xml.EndElement:
			if el.Name.Local == "arealist" && inList > 0 {
				inList--
			}
		}
	}
	return entries, nil
}

func parseBound(b xmlBound, kind area.BoundKind) (area.Boundary, error) {
	d, err := strconv.Atoi(strings.TrimSpace(b.Dimension))
	if err != nil {
		return area.Boundary{}, fmt.Errorf("%s dimension %q: %v", kind, b.Dimension, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(b.Value), 64)
	if err != nil {
		return area.Boundary{}, fmt.Errorf("%s value %q: %v", kind, b.Value, err)
	}
	return area.Boundary{Dimension: d, Kind: kind, Value: v}, nil
}
