// Package exam implements the online exam system: admin and student
// accounts, multiple choice exams, grading and ranked results.
//
// The System type is the application context. It holds four insertion-ordered
// tables (admins, students, exams and scores) and exposes every operation as
// a method, so nothing is kept in globals. Scores live in a single store keyed
// by student; the admin's ranked table and the student's own result list are
// both queries over it.
//
// Key Components:
//
//   - Authenticatable: implemented by AdminAccount and StudentAccount.
//     Passwords are stored as bcrypt hashes.
//
//   - System: SignUpAdmin, SignUpStudent, LoginAdmin, LoginStudent, AddExam,
//     DeleteExam, AddQuestion, EditQuestion, RecordScore, TakeExam and the
//     read-only queries. Mutations report their outcome through *store.Error
//     (RetCNotFound or RetCValidationFailed); unknown exam names come with a
//     "did you mean" hint when a similar name exists. An admin can only
//     delete, view and change the questions of exams they created; exams of
//     other admins are reported as missing.
//
//   - Grade / RankResults / AvailableExamsFor: the pure scoring functions.
//     RankResults orders by department, then student, and is stable.
//
//   - Load / Save: versioned snapshots (see Snapshot) in the files admins,
//     students, exams and scores of the data directory, encoded with the
//     configured codec.
//
//   - Write* / ExportXLSX: the text reports and the XLSX export.
//
// Question validity (at least two options, the correct answer among them) is
// checked when a question is written. Nothing else modifies options, so the
// check is not repeated on read.
//
// Thread-safety: a System is not safe for concurrent use.
package exam
