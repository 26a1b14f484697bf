// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/examiz/ent/assessment"
	"github.com/abhisek/examiz/ent/item"
	"github.com/abhisek/examiz/ent/schema"
	"github.com/abhisek/examiz/ent/submission"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentMixin := schema.Assessment{}.Mixin()
	assessmentMixinFields0 := assessmentMixin[0].Fields()
	_ = assessmentMixinFields0
	assessmentFields := schema.Assessment{}.Fields()
	_ = assessmentFields
	// assessmentDescCreatedAt is the schema descriptor for created_at field.
	assessmentDescCreatedAt := assessmentMixinFields0[0].Descriptor()
	// assessment.DefaultCreatedAt holds the default value on creation for the created_at field.
	assessment.DefaultCreatedAt = assessmentDescCreatedAt.Default.(func() time.Time)
	// assessmentDescAssessmentID is the schema descriptor for assessment_id field.
	assessmentDescAssessmentID := assessmentFields[0].Descriptor()
	// assessment.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	assessment.AssessmentIDValidator = assessmentDescAssessmentID.Validators[0].(func(string) error)
	// assessmentDescTitle is the schema descriptor for title field.
	assessmentDescTitle := assessmentFields[1].Descriptor()
	// assessment.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	assessment.TitleValidator = assessmentDescTitle.Validators[0].(func(string) error)
	// assessmentDescAssessmentType is the schema descriptor for assessment_type field.
	assessmentDescAssessmentType := assessmentFields[2].Descriptor()
	// assessment.AssessmentTypeValidator is a validator for the "assessment_type" field. It is called by the builders before save.
	assessment.AssessmentTypeValidator = assessmentDescAssessmentType.Validators[0].(func(string) error)
	// assessmentDescSubjectID is the schema descriptor for subject_id field.
	assessmentDescSubjectID := assessmentFields[3].Descriptor()
	// assessment.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	assessment.SubjectIDValidator = assessmentDescSubjectID.Validators[0].(func(string) error)
	// assessmentDescTotalItems is the schema descriptor for total_items field.
	assessmentDescTotalItems := assessmentFields[6].Descriptor()
	// assessment.TotalItemsValidator is a validator for the "total_items" field. It is called by the builders before save.
	assessment.TotalItemsValidator = assessmentDescTotalItems.Validators[0].(func(int) error)
	itemMixin := schema.Item{}.Mixin()
	itemMixinFields0 := itemMixin[0].Fields()
	_ = itemMixinFields0
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescCreatedAt is the schema descriptor for created_at field.
	itemDescCreatedAt := itemMixinFields0[0].Descriptor()
	// item.DefaultCreatedAt holds the default value on creation for the created_at field.
	item.DefaultCreatedAt = itemDescCreatedAt.Default.(func() time.Time)
	// itemDescItemID is the schema descriptor for item_id field.
	itemDescItemID := itemFields[0].Descriptor()
	// item.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	item.ItemIDValidator = itemDescItemID.Validators[0].(func(string) error)
	// itemDescSubjectID is the schema descriptor for subject_id field.
	itemDescSubjectID := itemFields[1].Descriptor()
	// item.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	item.SubjectIDValidator = itemDescSubjectID.Validators[0].(func(string) error)
	// itemDescCompetencyID is the schema descriptor for competency_id field.
	itemDescCompetencyID := itemFields[3].Descriptor()
	// item.CompetencyIDValidator is a validator for the "competency_id" field. It is called by the builders before save.
	item.CompetencyIDValidator = itemDescCompetencyID.Validators[0].(func(string) error)
	// itemDescItemType is the schema descriptor for item_type field.
	itemDescItemType := itemFields[4].Descriptor()
	// item.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	item.ItemTypeValidator = itemDescItemType.Validators[0].(func(string) error)
	// itemDescDifficulty is the schema descriptor for difficulty field.
	itemDescDifficulty := itemFields[5].Descriptor()
	// item.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	item.DifficultyValidator = itemDescDifficulty.Validators[0].(func(string) error)
	// itemDescCognitiveLevel is the schema descriptor for cognitive_level field.
	itemDescCognitiveLevel := itemFields[6].Descriptor()
	// item.CognitiveLevelValidator is a validator for the "cognitive_level" field. It is called by the builders before save.
	item.CognitiveLevelValidator = itemDescCognitiveLevel.Validators[0].(func(string) error)
	// itemDescVerified is the schema descriptor for verified field.
	itemDescVerified := itemFields[10].Descriptor()
	// item.DefaultVerified holds the default value on creation for the verified field.
	item.DefaultVerified = itemDescVerified.Default.(bool)
	submissionMixin := schema.Submission{}.Mixin()
	submissionMixinFields0 := submissionMixin[0].Fields()
	_ = submissionMixinFields0
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionMixinFields0[0].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescSubmissionID is the schema descriptor for submission_id field.
	submissionDescSubmissionID := submissionFields[0].Descriptor()
	// submission.SubmissionIDValidator is a validator for the "submission_id" field. It is called by the builders before save.
	submission.SubmissionIDValidator = submissionDescSubmissionID.Validators[0].(func(string) error)
	// submissionDescUserID is the schema descriptor for user_id field.
	submissionDescUserID := submissionFields[1].Descriptor()
	// submission.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	submission.UserIDValidator = submissionDescUserID.Validators[0].(func(string) error)
	// submissionDescSubjectID is the schema descriptor for subject_id field.
	submissionDescSubjectID := submissionFields[3].Descriptor()
	// submission.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	submission.SubjectIDValidator = submissionDescSubjectID.Validators[0].(func(string) error)
	// submissionDescTotalItems is the schema descriptor for total_items field.
	submissionDescTotalItems := submissionFields[6].Descriptor()
	// submission.TotalItemsValidator is a validator for the "total_items" field. It is called by the builders before save.
	submission.TotalItemsValidator = submissionDescTotalItems.Validators[0].(func(int) error)
}
