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

// CoordDocument：坐标文档解码结果
type CoordDocument struct {
	Path   string
	Digest uint64
	Points []area.Point
}

type xmlNode struct {
	Coords []string `xml:"coord"`
}

// LoadCoords：读取坐标文档（nodelist/node/coord），保持节点顺序
func LoadCoords(path string) (*CoordDocument, error) {
	r, digest, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	points, err := DecodeCoords(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &CoordDocument{Path: path, Digest: digest, Points: points}, nil
}

// 文档注释：解码坐标文档
// 约束：只读取位于 nodelist 元素内的 node；坐标按文档顺序组成点，无法解析的坐标返回 ErrInvalidInput。
func DecodeCoords(r io.Reader) ([]area.Point, error) {
	dec := xml.NewDecoder(r)
	var points []area.Point
	inList := 0
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
			if el.Name.Local == "nodelist" {
				inList++
				continue
			}
			if el.Name.Local != "node" || inList == 0 {
				continue
			}
			var n xmlNode
			if err := dec.DecodeElement(&n, &el); err != nil {
				return nil, fmt.Errorf("%w: node %d: %v", area.ErrInvalidInput, len(points), err)
			}
			p := make(area.Point, 0, len(n.Coords))
			for _, c := range n.Coords {
				v, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
				if err != nil {
					return nil, fmt.Errorf("%w: node %d coord %q: %v", area.ErrInvalidInput, len(points), c, err)
				}
				p = append(p, v)
			}
			points = append(points, p)
		case xml.EndElement:
			if el.Name.Local == "nodelist" && inList > 0 {
				inList--
			}
		}
	}
	return points, nil
}
