package hydration

import (
	"github.com/Masterminds/semver/v3"
)

var currentVersion = semver.MustParse(SchemaVersion)

func (p *pass) checkVersion() {
	raw := p.rec["version"]
	if raw == nil {
		p.change("record had no schema version; stamped %s", SchemaVersion)
		return
	}

	tag, ok := stringValue(raw)
	if !ok {
		p.change("schema version %v is not a version string; stamped %s", raw, SchemaVersion)
		return
	}
	if tag == SchemaVersion {
		return
	}

	v, err := semver.NewVersion(tag)
	switch {
	case err != nil:
		p.change("unrecognized schema version %q; stamped %s", tag, SchemaVersion)
	case v.LessThan(currentVersion):
		p.change("migrated record from schema %s to %s", tag, SchemaVersion)
	case v.GreaterThan(currentVersion):
		p.change("record from newer schema %s read as %s", tag, SchemaVersion)
	default:
		p.change("schema version %q normalized to %s", tag, SchemaVersion)
	}
}
