package parser

// Command words.
const (
	WordAdd         = "add"
	WordEdit        = "edit"
	WordDelete      = "delete"
	WordClear       = "clear"
	WordList        = "list"
	WordFind        = "find"
	WordFilter      = "filter"
	WordAddGroup    = "addgroup"
	WordEditGroup   = "editgroup"
	WordDeleteGroup = "deletegroup"
	WordMark        = "mark"
	WordMail        = "mail"
	WordMailTG      = "mailtg"
	WordHelp        = "help"
	WordExit        = "exit"
)

// Usage text per command word.
const (
	UsageAdd = WordAdd + ": Adds a person to the address book. " +
		"Parameters: n/NAME [p/PHONE] [e/EMAIL] [y/YEAR] [m/MAJOR] [tg/TELEGRAM] [r/REMARK] [g/GROUP]...\n" +
		"Example: " + WordAdd + " n/John Doe p/98765432 e/johnd@example.com y/2 m/Computer Science tg/@johndoe g/TUT04"
	UsageEdit = WordEdit + ": Edits the details of the person identified by the index number used in the displayed person list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [y/YEAR] [m/MAJOR] [tg/TELEGRAM] [r/REMARK] [g/GROUP]...\n" +
		"Example: " + WordEdit + " 1 p/91234567 e/johndoe@example.com"
	UsageDelete = WordDelete + ": Deletes the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordDelete + " 1"
	UsageFind = WordFind + ": Finds all persons whose names contain any of the specified keywords (case-insensitive) " +
		"and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + WordFind + " alice bob charlie"
	UsageFilter = WordFilter + ": Lists all persons belonging to any of the specified groups (case-insensitive).\n" +
		"Parameters: GROUP [MORE_GROUPS]...\n" +
		"Example: " + WordFilter + " TUT04 LAB10"
	UsageAddGroup = WordAddGroup + ": Adds a group to the address book. " +
		"Parameters: g/GROUP [l/TELEGRAM_LINK]\n" +
		"Example: " + WordAddGroup + " g/TUT04 l/https://t.me/tut04_group"
	UsageEditGroup = WordEditGroup + ": Changes the Telegram link of a group. " +
		"Parameters: g/GROUP l/TELEGRAM_LINK\n" +
		"Example: " + WordEditGroup + " g/TUT04 l/https://t.me/tut04_group"
	UsageDeleteGroup = WordDeleteGroup + ": Deletes a group and removes every person from it. " +
		"Parameters: g/GROUP\n" +
		"Example: " + WordDeleteGroup + " g/TUT04"
	UsageMark = WordMark + ": Marks the attendance of the person identified by the index number used in the displayed person list. " +
		"Parameters: INDEX (must be a positive integer) g/GROUP w/WEEK a/ATTENDANCE (A or P)\n" +
		"Example: " + WordMark + " 1 g/TUT04 w/3 a/P"
	UsageMail = WordMail + ": Creates a mailto link for all persons, or for persons in any of the specified groups.\n" +
		"Parameters: [GROUP]...\n" +
		"Example: " + WordMail + " TUT04 LAB10"
	UsageMailTG = WordMailTG + ": Creates a mailto link inviting the members of a group to its Telegram group.\n" +
		"Parameters: g/GROUP\n" +
		"Example: " + WordMailTG + " g/TUT04"
	UsageHelp = WordHelp + ": Shows program usage instructions.\n" +
		"Example: " + WordHelp
)

// HelpText lists the usage of every command.
const HelpText = UsageAdd + "\n\n" + UsageEdit + "\n\n" + UsageDelete + "\n\n" +
	WordClear + ": Clears all entries from the address book.\n\n" +
	WordList + ": Lists all persons.\n\n" +
	UsageFind + "\n\n" + UsageFilter + "\n\n" +
	UsageAddGroup + "\n\n" + UsageEditGroup + "\n\n" + UsageDeleteGroup + "\n\n" +
	UsageMark + "\n\n" + UsageMail + "\n\n" + UsageMailTG + "\n\n" +
	UsageHelp + "\n\n" +
	WordExit + ": Exits the program."
