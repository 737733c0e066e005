package petsim

// miniGameCatalog holds the immutable mini-game definitions, loaded once at
// process start and never mutated.
var miniGameCatalog = []MiniGameDefinition{
	{
		Type:       GameTrueFalse,
		Label:      "True or False",
		DailyCount: 7,
		Reward: MiniGameReward{
			Correct:   ResponseEffects{RiskDelta: -6, MoodDelta: 3, HealthDelta: 2},
			Incorrect: ResponseEffects{RiskDelta: 4, MoodDelta: -3, HealthDelta: -2},
		},
		Questions: []MiniGameQuestion{
			{
				ID:          "tf_01",
				Prompt:      "Using the same password across sites is safe if the password is long.",
				BoolAnswer:  false,
				Explanation: "Password reuse is risky because one breach can expose all accounts sharing that password.",
			},
			{
				ID:          "tf_02",
				Prompt:      "Enabling 2FA can reduce the impact of leaked passwords.",
				BoolAnswer:  true,
				Explanation: "2FA adds a second verification step, making account takeover harder.",
			},
			{
				ID:          "tf_03",
				Prompt:      "A short password with symbols is always stronger than a long passphrase.",
				BoolAnswer:  false,
				Explanation: "Length is critical. Long unique passphrases are typically stronger than short complex strings.",
			},
			{
				ID:          "tf_04",
				Prompt:      "If breach monitoring alerts you, rotating passwords quickly lowers future risk.",
				BoolAnswer:  true,
				Explanation: "Fast password rotation after alerts helps block credential stuffing attempts.",
			},
			{
				ID:          "tf_05",
				Prompt:      "Saving a password in plain text notes is a secure habit.",
				BoolAnswer:  false,
				Explanation: "Plain text storage is insecure. Use a trusted password manager instead.",
			},
			{
				ID:          "tf_06",
				Prompt:      "Logging out suspicious sessions can help after unusual login activity.",
				BoolAnswer:  true,
				Explanation: "Session lockdown reduces attacker persistence after suspicious access.",
			},
			{
				ID:          "tf_07",
				Prompt:      "A padlock icon in your browser means the website is completely safe.",
				BoolAnswer:  false,
				Explanation: "The padlock means the connection is encrypted, but the site itself could still be fake.",
			},
			{
				ID:          "tf_08",
				Prompt:      "You should tell a trusted adult if something online makes you uncomfortable.",
				BoolAnswer:  true,
				Explanation: "A parent, teacher, or guardian can help you handle scary or upsetting things online.",
			},
			{
				ID:          "tf_09",
				Prompt:      "It is okay to share your home address with someone you only know online.",
				BoolAnswer:  false,
				Explanation: "Never share personal details online, because people are not always who they say they are.",
			},
			{
				ID:          "tf_10",
				Prompt:      "Software updates often include important security fixes.",
				BoolAnswer:  true,
				Explanation: "Updates patch security holes that hackers could use to break into your device.",
			},
			{
				ID:          "tf_11",
				Prompt:      "Free Wi-Fi at a shopping centre is always safe to use for banking.",
				BoolAnswer:  false,
				Explanation: "Public Wi-Fi can be monitored by attackers. Use mobile data for sensitive tasks.",
			},
			{
				ID:          "tf_12",
				Prompt:      "A password manager helps you keep unique passwords for every account.",
				BoolAnswer:  true,
				Explanation: "Password managers store and generate strong unique passwords so you don't have to remember them all.",
			},
			{
				ID:          "tf_13",
				Prompt:      "If a friend sends you a strange link, it is always safe to click it.",
				BoolAnswer:  false,
				Explanation: "Your friend's account may have been hacked. Always verify before clicking unexpected links.",
			},
			{
				ID:          "tf_14",
				Prompt:      "Antivirus software can help protect your computer from malware.",
				BoolAnswer:  true,
				Explanation: "Antivirus detects and removes harmful software before it can damage your device.",
			},
			{
				ID:          "tf_15",
				Prompt:      "Using your pet's name as a password is a good idea because it is easy to remember.",
				BoolAnswer:  false,
				Explanation: "Personal info like pet names can be guessed from social media. Use random passphrases instead.",
			},
		},
	},
	{
		Type:       GamePasswordStrengthener,
		Label:      "Password Strengthener",
		DailyCount: 7,
		Reward: MiniGameReward{
			Correct:   ResponseEffects{RiskDelta: -8, MoodDelta: 3, HealthDelta: 3},
			Incorrect: ResponseEffects{RiskDelta: 4, MoodDelta: -2, HealthDelta: -1},
		},
		// IndexAnswer: 0 = Weak, 1 = OK, 2 = Strong.
		Questions: []MiniGameQuestion{
			{
				ID:          "ps_01",
				Prompt:      "password123",
				IndexAnswer: 0,
				Explanation: "This is one of the most commonly guessed passwords in the world.",
			},
			{
				ID:          "ps_02",
				Prompt:      "blue-tiger-cloud-99",
				IndexAnswer: 2,
				Explanation: "A long passphrase with random words and a number is very hard to crack.",
			},
			{
				ID:          "ps_03",
				Prompt:      "Sophie2015",
				IndexAnswer: 0,
				Explanation: "A name and a year are easy to guess, especially from social media.",
			},
			{
				ID:          "ps_04",
				Prompt:      "Tr33H0use!",
				IndexAnswer: 1,
				Explanation: "It uses some tricks, but it is short and based on a common word.",
			},
			{
				ID:          "ps_05",
				Prompt:      "rocket-piano-garden-fish",
				IndexAnswer: 2,
				Explanation: "Four random words make a very long and hard-to-guess passphrase.",
			},
			{
				ID:          "ps_06",
				Prompt:      "abc123",
				IndexAnswer: 0,
				Explanation: "This is extremely short and one of the first passwords attackers try.",
			},
			{
				ID:          "ps_07",
				Prompt:      "M0untain!River$2024",
				IndexAnswer: 2,
				Explanation: "Long with mixed case, numbers, and symbols makes this very strong.",
			},
			{
				ID:          "ps_08",
				Prompt:      "iloveyou",
				IndexAnswer: 0,
				Explanation: "Common phrases are in every password cracking dictionary.",
			},
			{
				ID:          "ps_09",
				Prompt:      "Ch3rry!Jam",
				IndexAnswer: 1,
				Explanation: "Decent with symbols and numbers but a bit short for maximum security.",
			},
			{
				ID:          "ps_10",
				Prompt:      "qwerty",
				IndexAnswer: 0,
				Explanation: "Keyboard patterns are among the first things attackers check.",
			},
			{
				ID:          "ps_11",
				Prompt:      "correct-horse-battery-staple",
				IndexAnswer: 2,
				Explanation: "A famous example of a strong passphrase. Long and random words are hard to crack.",
			},
			{
				ID:          "ps_12",
				Prompt:      "Football1",
				IndexAnswer: 0,
				Explanation: "A common word with just one number is very easy to guess.",
			},
			{
				ID:          "ps_13",
				Prompt:      "S@fe_Pass99",
				IndexAnswer: 1,
				Explanation: "Uses symbols and numbers but is based on predictable words.",
			},
			{
				ID:          "ps_14",
				Prompt:      "purple-sunset-train-42-lamp",
				IndexAnswer: 2,
				Explanation: "Five random words with a number make an excellent passphrase.",
			},
			{
				ID:          "ps_15",
				Prompt:      "letmein",
				IndexAnswer: 0,
				Explanation: "This is one of the top 10 most common passwords worldwide.",
			},
		},
	},
	{
		Type:       GameFillBlanks,
		Label:      "Fill in the Blanks",
		DailyCount: 7,
		Reward: MiniGameReward{
			Correct:   ResponseEffects{RiskDelta: -7, MoodDelta: 3, HealthDelta: 2},
			Incorrect: ResponseEffects{RiskDelta: 4, MoodDelta: -2, HealthDelta: -2},
		},
		Questions: []MiniGameQuestion{
			{
				ID:          "fb_01",
				Prompt:      "Never share your _____ with strangers online.",
				Options:     []string{"password", "favourite colour", "favourite movie"},
				IndexAnswer: 0,
				Explanation: "Your password is private. Only share it with a trusted adult at home.",
			},
			{
				ID:          "fb_02",
				Prompt:      "If something online makes you feel scared, tell a trusted _____.",
				Options:     []string{"stranger", "adult", "chatbot"},
				IndexAnswer: 1,
				Explanation: "A parent, teacher, or guardian can help you stay safe.",
			},
			{
				ID:          "fb_03",
				Prompt:      "Before clicking a link in an email, check the _____ address.",
				Options:     []string{"sender's", "home", "IP"},
				IndexAnswer: 0,
				Explanation: "Checking who sent the email helps you spot fakes.",
			},
			{
				ID:          "fb_04",
				Prompt:      "A strong password should be _____ and hard to guess.",
				Options:     []string{"short", "long", "your name"},
				IndexAnswer: 1,
				Explanation: "Longer passwords are much harder for hackers to crack.",
			},
			{
				ID:          "fb_05",
				Prompt:      "Only download apps from the _____ app store.",
				Options:     []string{"official", "fastest", "cheapest"},
				IndexAnswer: 0,
				Explanation: "Official stores check apps for safety before you download them.",
			},
			{
				ID:          "fb_06",
				Prompt:      "You should _____ your device software when updates are available.",
				Options:     []string{"ignore", "update", "delete"},
				IndexAnswer: 1,
				Explanation: "Updates fix security problems that hackers could use to break in.",
			},
			{
				ID:          "fb_07",
				Prompt:      "A _____ manager helps you store all your passwords safely.",
				Options:     []string{"password", "file", "screen"},
				IndexAnswer: 0,
				Explanation: "Password managers keep your login details encrypted and secure.",
			},
			{
				ID:          "fb_08",
				Prompt:      "Two-factor authentication adds an extra _____ of security.",
				Options:     []string{"layer", "risk", "cost"},
				IndexAnswer: 0,
				Explanation: "2FA means even if someone gets your password, they still need a second code.",
			},
			{
				ID:          "fb_09",
				Prompt:      "Public Wi-Fi is _____ secure than your home network.",
				Options:     []string{"more", "less", "equally"},
				IndexAnswer: 1,
				Explanation: "Anyone on the same public network could potentially see your data.",
			},
			{
				ID:          "fb_10",
				Prompt:      "If you get a message from an unknown person asking for personal info, you should _____ it.",
				Options:     []string{"answer", "ignore", "forward"},
				IndexAnswer: 1,
				Explanation: "Never reply to strangers asking for personal information.",
			},
			{
				ID:          "fb_11",
				Prompt:      "You should use a _____ password for each account.",
				Options:     []string{"same", "different", "simple"},
				IndexAnswer: 1,
				Explanation: "Using different passwords means one breach won't affect all your accounts.",
			},
			{
				ID:          "fb_12",
				Prompt:      "Clicking pop-up ads can sometimes install _____ on your device.",
				Options:     []string{"updates", "malware", "passwords"},
				IndexAnswer: 1,
				Explanation: "Pop-ups can trick you into downloading harmful software.",
			},
			{
				ID:          "fb_13",
				Prompt:      "Before posting a photo online, think about what _____ information it might reveal.",
				Options:     []string{"personal", "funny", "old"},
				IndexAnswer: 0,
				Explanation: "Photos can reveal your location, school, or other private details.",
			},
			{
				ID:          "fb_14",
				Prompt:      "A phishing email often tries to create a sense of _____.",
				Options:     []string{"calm", "urgency", "boredom"},
				IndexAnswer: 1,
				Explanation: "Scammers use urgency to make you act before thinking.",
			},
			{
				ID:          "fb_15",
				Prompt:      "When creating an account, your _____ should not contain your real name.",
				Options:     []string{"username", "email subject", "profile picture"},
				IndexAnswer: 0,
				Explanation: "Using your real name in usernames makes it easier for strangers to find you.",
			},
		},
	},
}
