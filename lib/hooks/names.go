package hooks

const (
	InitString                   = "init"
	RevisionCreatedString        = "revision.created"
	RevisionRestoredString       = "revision.restored"
	PostHasChangedString         = "revision.post_has_changed"
	BeforeSaveString             = "db.before_save"
	SaveBuilderReturnDataString  = "ajax_save_builder.return_data"
	EditorLocalizeSettingsString = "editor.localize_settings"
)

// AjaxAction returns the hook name ajax handlers for action subscribe to.
func AjaxAction(action string) string {
	return "ajax:" + action
}
