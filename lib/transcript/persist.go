package transcript

import (
	"github.com/ValentinKolb/dRec/lib/codec"
	"github.com/ValentinKolb/dRec/lib/common"
	"github.com/ValentinKolb/dRec/lib/db"
	"github.com/ValentinKolb/dRec/lib/metrics"
	"github.com/ValentinKolb/dRec/lib/store"
	"github.com/ValentinKolb/dRec/lib/store/filestore"
	"io"
	"slices"
)

// SnapshotVersion is the schema version written by Save for structured formats
const SnapshotVersion = 1

// Snapshot is the structured on-disk form of a gradebook
type Snapshot struct {
	Version  int                        `json:"version" yaml:"version"`
	Students []db.Entry[[]CourseRecord] `json:"students" yaml:"students"`
}

// Load reads the gradebook stored at path in the given format.
// A missing file yields an empty gradebook. Issues are only reported for the
// line format; a malformed structured file is a store-unavailable error.
func Load(path string, format common.StoreFormat, policy GradePolicy) (IGradebook, []LineIssue, error) {
	if format == common.FormatLines {
		return loadLines(path, policy)
	}

	c, err := codec.ForFormat(format)
	if err != nil {
		return nil, nil, store.NewError(store.RetCStoreUnavailable, err.Error())
	}

	var snap Snapshot
	found, err := filestore.Load(path, c, &snap)
	if err != nil {
		return nil, nil, err
	}
	g := newGradebookImpl()
	if !found {
		return g, nil, nil
	}
	if snap.Version != SnapshotVersion {
		return nil, nil, store.Errorf(store.RetCStoreUnavailable, "%s: unsupported snapshot version %d (expected %d)", path, snap.Version, SnapshotVersion)
	}
	// a student without courses does not exist
	db.Fill(g.students, slices.DeleteFunc(snap.Students, func(e db.Entry[[]CourseRecord]) bool {
		return len(e.Value) == 0
	}))
	info := g.students.GetInfo()
	plog.Infof("loaded %d students from %s (%s table)", info.Entries, path, info.DbType)
	return g, nil, nil
}

func loadLines(path string, policy GradePolicy) (IGradebook, []LineIssue, error) {
	var (
		g      IGradebook
		issues []LineIssue
	)
	found, err := filestore.Read(path, func(r io.Reader) (err error) {
		g, issues, err = ReadLines(r, policy)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return NewGradebook(), nil, nil
	}

	for _, issue := range issues {
		plog.Warningf("%s: %s", path, issue)
	}
	metrics.AddLoadIssues(metricsTool, len(issues))
	plog.Infof("loaded %d students from %s", g.Len(), path)
	return g, issues, nil
}

// Save overwrites path with the gradebook in the given format. For the line
// format a gradebook holding negative grades fails validation and path is left
// untouched.
func Save(path string, format common.StoreFormat, g IGradebook) error {
	if format == common.FormatLines {
		if err := checkLines(g); err != nil {
			return err
		}
		return filestore.Write(path, func(w io.Writer) error {
			return WriteLines(w, g)
		})
	}

	c, err := codec.ForFormat(format)
	if err != nil {
		return store.NewError(store.RetCStoreUnavailable, err.Error())
	}
	return filestore.Save(path, c, &Snapshot{Version: SnapshotVersion, Students: g.Entries()})
}
