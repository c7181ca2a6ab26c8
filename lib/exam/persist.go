package exam

import (
	"github.com/ValentinKolb/dRec/lib/codec"
	"github.com/ValentinKolb/dRec/lib/common"
	"github.com/ValentinKolb/dRec/lib/db"
	"github.com/ValentinKolb/dRec/lib/store"
	"github.com/ValentinKolb/dRec/lib/store/filestore"
)

// SnapshotVersion is the schema version written by Save
const SnapshotVersion = 1

// Snapshot is the on-disk form of one store file
type Snapshot[T any] struct {
	Version int `json:"version" yaml:"version"`
	Entries []T `json:"entries" yaml:"entries"`
}

// StoreFile names one of the files the system is persisted to
type StoreFile string

const (
	FileAdmins   StoreFile = "admins"
	FileStudents StoreFile = "students"
	FileExams    StoreFile = "exams"
	FileScores   StoreFile = "scores"
)

// AllFiles lists every store file in load order
var AllFiles = []StoreFile{FileAdmins, FileStudents, FileExams, FileScores}

// storeFormat returns the structured format to use for the configured one.
// The line format belongs to the transcript tool, json is used instead.
func storeFormat(cfg *common.Config) common.StoreFormat {
	if cfg.Format == common.FormatLines || cfg.Format == "" {
		return common.FormatJSON
	}
	return cfg.Format
}

// StorePath returns the path of a store file under the configuration
func StorePath(cfg *common.Config, file StoreFile) string {
	c := *cfg
	c.Format = storeFormat(cfg)
	return c.StorePath(string(file))
}

func loadFile[T any](cfg *common.Config, file StoreFile, c codec.ICodec, fill func(T)) error {
	path := StorePath(cfg, file)
	var snap Snapshot[T]
	found, err := filestore.Load(path, c, &snap)
	if err != nil || !found {
		return err
	}
	if snap.Version != SnapshotVersion {
		return store.Errorf(store.RetCStoreUnavailable, "%s: unsupported snapshot version %d (expected %d)", path, snap.Version, SnapshotVersion)
	}
	for _, e := range snap.Entries {
		fill(e)
	}
	plog.Infof("loaded %d %s from %s", len(snap.Entries), file, path)
	return nil
}

func saveFile[T any](cfg *common.Config, file StoreFile, c codec.ICodec, entries []T) error {
	return filestore.Save(StorePath(cfg, file), c, &Snapshot[T]{Version: SnapshotVersion, Entries: entries})
}

func values[V any](t db.Table[V]) []V {
	vals := make([]V, 0, t.Len())
	t.Range(func(_ string, v V) bool {
		vals = append(vals, v)
		return true
	})
	return vals
}

// Load reads all store files from the data directory. Missing files are
// empty stores; a malformed file fails the whole load.
func Load(cfg *common.Config) (*System, error) {
	c, err := codec.ForFormat(storeFormat(cfg))
	if err != nil {
		return nil, store.NewError(store.RetCStoreUnavailable, err.Error())
	}

	s := NewSystem()
	if err := loadFile(cfg, FileAdmins, c, func(a AdminAccount) { s.admins.Set(a.Username, a) }); err != nil {
		return nil, err
	}
	if err := loadFile(cfg, FileStudents, c, func(st StudentAccount) { s.students.Set(st.Username, st) }); err != nil {
		return nil, err
	}
	if err := loadFile(cfg, FileExams, c, func(e Exam) { s.exams.Set(e.Name, e) }); err != nil {
		return nil, err
	}
	if err := loadFile(cfg, FileScores, c, func(r ScoreRecord) {
		records, _ := s.scores.Get(r.Student)
		s.scores.Set(r.Student, append(records, r))
	}); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the given store files, or all of them if none are given.
// Each file is overwritten in place.
func (s *System) Save(cfg *common.Config, files ...StoreFile) error {
	if len(files) == 0 {
		files = AllFiles
	}
	c, err := codec.ForFormat(storeFormat(cfg))
	if err != nil {
		return store.NewError(store.RetCStoreUnavailable, err.Error())
	}

	for _, file := range files {
		switch file {
		case FileAdmins:
			err = saveFile(cfg, file, c, values(s.admins))
		case FileStudents:
			err = saveFile(cfg, file, c, values(s.students))
		case FileExams:
			err = saveFile(cfg, file, c, values(s.exams))
		case FileScores:
			err = saveFile(cfg, file, c, s.AllResults())
		default:
			err = store.Errorf(store.RetCInternalError, "unknown store file %s", file)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
