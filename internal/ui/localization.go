package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyDownload          = "download"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyEnterURL          = "enter_url"
	KeyVideoURL          = "video_url"
	KeyStartTime         = "start_time"
	KeyEndTime           = "end_time"
	KeyResolution        = "resolution"
	KeyOutputFolder      = "output_folder"
	KeyFullVideo         = "full_video"
	KeyTranscript        = "transcript"
	KeyAudioOnly         = "audio_only"
	KeyRevealOnSuccess   = "reveal_on_success"
	KeyEngine            = "engine"
	KeyYTDLPPath         = "ytdlp_path"
	KeyFFmpegPath        = "ffmpeg_path"
	KeyExternalDL        = "external_downloader"
	KeyOutputPrefix      = "output_prefix"
	KeySubtitleLangs     = "subtitle_langs"
	KeyRestartRequired   = "restart_required"
	KeySettingsSaved     = "settings_saved"
	KeyInputError        = "input_error"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyPleaseEnterTimes  = "please_enter_times"
	KeyPleaseChooseDir   = "please_choose_folder"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyIdle              = "idle"
	KeyInProgressFormat  = "in_progress_format"
	KeyStoppingDownload  = "stopping_download"
	KeyRecentRequests    = "recent_requests"
	KeyTranscriptPresent = "transcript_present"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YT Clipper",
		KeyDownload:          "Download",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyEnterURL:          "https://www.youtube.com/watch?v=...",
		KeyVideoURL:          "Video URL",
		KeyStartTime:         "Start time (hh:mm:ss)",
		KeyEndTime:           "End time (hh:mm:ss)",
		KeyResolution:        "Resolution",
		KeyOutputFolder:      "Output folder",
		KeyFullVideo:         "Download full video",
		KeyTranscript:        "Download transcript",
		KeyAudioOnly:         "Audio only (mp3)",
		KeyRevealOnSuccess:   "Show file after download",
		KeyEngine:            "Engine",
		KeyYTDLPPath:         "yt-dlp path",
		KeyFFmpegPath:        "ffmpeg path",
		KeyExternalDL:        "External downloader",
		KeyOutputPrefix:      "Output prefix",
		KeySubtitleLangs:     "Subtitle languages (comma separated)",
		KeyRestartRequired:   "Tool settings apply after restart.",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInputError:        "Input Error",
		KeyPleaseEnterURL:    "Please enter a video URL.",
		KeyPleaseEnterTimes:  "Please enter start and end times.",
		KeyPleaseChooseDir:   "Please choose an output folder.",
		KeyErrorOpeningFile:  "Error opening file",
		KeyIdle:              "Ready",
		KeyInProgressFormat:  "%d download(s) in progress",
		KeyStoppingDownload:  "Stopping download...",
		KeyRecentRequests:    "Requests",
		KeyTranscriptPresent: "Transcript",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YT Клиппер",
		KeyDownload:          "Скачать",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyVideoURL:          "URL видео",
		KeyStartTime:         "Начало (чч:мм:сс)",
		KeyEndTime:           "Конец (чч:мм:сс)",
		KeyResolution:        "Разрешение",
		KeyOutputFolder:      "Папка сохранения",
		KeyFullVideo:         "Скачать видео целиком",
		KeyTranscript:        "Скачать субтитры",
		KeyAudioOnly:         "Только звук (mp3)",
		KeyRevealOnSuccess:   "Показать файл после загрузки",
		KeyEngine:            "Движок",
		KeyYTDLPPath:         "Путь к yt-dlp",
		KeyFFmpegPath:        "Путь к ffmpeg",
		KeyExternalDL:        "Внешний загрузчик",
		KeyOutputPrefix:      "Префикс имени",
		KeySubtitleLangs:     "Языки субтитров (через запятую)",
		KeyRestartRequired:   "Настройки инструментов применятся после перезапуска.",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyInputError:        "Ошибка ввода",
		KeyPleaseEnterURL:    "Пожалуйста, введите URL видео.",
		KeyPleaseEnterTimes:  "Пожалуйста, укажите начало и конец.",
		KeyPleaseChooseDir:   "Пожалуйста, выберите папку.",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyIdle:              "Готово",
		KeyInProgressFormat:  "Загрузок в процессе: %d",
		KeyStoppingDownload:  "Остановка загрузки...",
		KeyRecentRequests:    "Запросы",
		KeyTranscriptPresent: "Субтитры",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "YT Clipper",
		KeyDownload:          "Baixar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyVideoURL:          "URL do vídeo",
		KeyStartTime:         "Início (hh:mm:ss)",
		KeyEndTime:           "Fim (hh:mm:ss)",
		KeyResolution:        "Resolução",
		KeyOutputFolder:      "Pasta de saída",
		KeyFullVideo:         "Baixar vídeo completo",
		KeyTranscript:        "Baixar transcrição",
		KeyAudioOnly:         "Somente áudio (mp3)",
		KeyRevealOnSuccess:   "Mostrar arquivo após baixar",
		KeyEngine:            "Motor",
		KeyYTDLPPath:         "Caminho do yt-dlp",
		KeyFFmpegPath:        "Caminho do ffmpeg",
		KeyExternalDL:        "Downloader externo",
		KeyOutputPrefix:      "Prefixo de saída",
		KeySubtitleLangs:     "Idiomas de legenda (separados por vírgula)",
		KeyRestartRequired:   "As ferramentas serão aplicadas após reiniciar.",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyInputError:        "Erro de entrada",
		KeyPleaseEnterURL:    "Por favor, digite a URL do vídeo.",
		KeyPleaseEnterTimes:  "Por favor, informe início e fim.",
		KeyPleaseChooseDir:   "Por favor, escolha uma pasta.",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyIdle:              "Pronto",
		KeyInProgressFormat:  "%d download(s) em andamento",
		KeyStoppingDownload:  "Parando download...",
		KeyRecentRequests:    "Pedidos",
		KeyTranscriptPresent: "Transcrição",
	}
}
