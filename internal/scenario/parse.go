package scenario

import (
	"errors"

	"github.com/vovakirdan/treasure-map/internal/world"
)

// Parse validates and builds a scenario line by line. It stops at the first
// rejected line; no partially built world is ever returned.
func Parse(lines []string) (*world.World, error) {
	if err := CheckFile(lines); err != nil {
		return nil, err
	}

	var (
		v Validator
		b *Builder
	)
	for i, line := range lines {
		lineNo := i + 1
		kind, ok := LineKind(line)
		if !ok {
			return nil, structural(CodeUnknownTag, "cannot build the game from this line").at(lineNo, line)
		}
		fields := SplitFields(line)

		var err error
		switch kind {
		case KindMap:
			if b != nil {
				return nil, structural(CodeDuplicateMap, "the map is already defined").at(lineNo, line)
			}
			if err = v.CheckMap(line, fields); err == nil {
				b = NewBuilder(CreateMap(fields))
			}
		case KindMountain:
			if err = v.CheckMountain(line, fields); err == nil {
				err = b.CreateMountain(fields)
			}
		case KindTreasure:
			if err = v.CheckTreasure(line, fields); err == nil {
				err = b.CreateTreasure(fields)
			}
		case KindAdventurer:
			if err = v.CheckAdventurer(line, fields); err == nil {
				err = b.CreateAdventurer(fields)
			}
		}
		if err != nil {
			var se *Error
			if errors.As(err, &se) {
				return nil, se.at(lineNo, line)
			}
			return nil, err
		}
	}
	return b.World(), nil
}
