package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyDownload         = "download"
	KeyCancel           = "cancel"
	KeyGetInfo          = "get_info"
	KeyLoading          = "loading"
	KeyBrowse           = "browse"
	KeyEnterURL         = "enter_url"
	KeyURLSection       = "url_section"
	KeyInfoSection      = "info_section"
	KeyFormatSection    = "format_section"
	KeyLocationSection  = "location_section"
	KeyProgressSection  = "progress_section"
	KeyTitle            = "title"
	KeyDuration         = "duration"
	KeyEstSize          = "est_size"
	KeyNoVideo          = "no_video"
	KeyStatusReady      = "status_ready"
	KeyStatusFetching   = "status_fetching"
	KeyStatusInfoLoaded = "status_info_loaded"
	KeyStatusStarting   = "status_starting"
	KeyStatusProgress   = "status_progress"
	KeyStatusCompleted  = "status_completed"
	KeyStatusCancelled  = "status_cancelled"
	KeyStatusFailed     = "status_failed"
	KeyPleaseEnterURL   = "please_enter_url"
	KeyInvalidURL       = "invalid_url"
	KeyBusy             = "busy"
	KeySuccess          = "success"
	KeyError            = "error"
	KeySavedTo          = "saved_to"
	KeyOpenFolder       = "open_folder"
	KeyErrEmptyInput    = "err_empty_input"
	KeyErrMalformedURL  = "err_malformed_url"
	KeyErrNetwork       = "err_network"
	KeyErrUnavailable   = "err_unavailable"
	KeyErrWrite         = "err_write"
	KeyErrUnknown       = "err_unknown"
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
		KeyAppTitle:         "TubeGet",
		KeyDownload:         "Download Video",
		KeyCancel:           "Cancel",
		KeyGetInfo:          "Get Info",
		KeyLoading:          "Loading...",
		KeyBrowse:           "Browse",
		KeyEnterURL:         "Enter YouTube URL (https://youtube.com/watch?v=...)",
		KeyURLSection:       "YouTube URL",
		KeyInfoSection:      "Video Information",
		KeyFormatSection:    "Download Format",
		KeyLocationSection:  "Download Location",
		KeyProgressSection:  "Download Progress",
		KeyTitle:            "Title:",
		KeyDuration:         "Duration:",
		KeyEstSize:          "Est. Size:",
		KeyNoVideo:          "No video selected",
		KeyStatusReady:      "Ready",
		KeyStatusFetching:   "Fetching video information...",
		KeyStatusInfoLoaded: "Video information loaded",
		KeyStatusStarting:   "Starting download...",
		KeyStatusProgress:   "Downloading... %d%%",
		KeyStatusCompleted:  "Download completed successfully!",
		KeyStatusCancelled:  "Download cancelled",
		KeyStatusFailed:     "Download failed",
		KeyPleaseEnterURL:   "Please enter a YouTube URL",
		KeyInvalidURL:       "Invalid YouTube URL",
		KeyBusy:             "A download is already in progress",
		KeySuccess:          "Success",
		KeyError:            "Error",
		KeySavedTo:          "Video saved to",
		KeyOpenFolder:       "Open the containing folder?",
		KeyErrEmptyInput:    "No URL was provided",
		KeyErrMalformedURL:  "The URL is not a recognized YouTube link",
		KeyErrNetwork:       "Network error, check your connection and try again",
		KeyErrUnavailable:   "This video is unavailable or has been removed",
		KeyErrWrite:         "Cannot write to the download folder",
		KeyErrUnknown:       "Download failed for an unknown reason",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "TubeGet",
		KeyDownload:         "Скачать видео",
		KeyCancel:           "Отмена",
		KeyGetInfo:          "Инфо",
		KeyLoading:          "Загрузка...",
		KeyBrowse:           "Обзор",
		KeyEnterURL:         "Введите ссылку YouTube (https://youtube.com/watch?v=...)",
		KeyURLSection:       "Ссылка YouTube",
		KeyInfoSection:      "Информация о видео",
		KeyFormatSection:    "Формат загрузки",
		KeyLocationSection:  "Папка загрузки",
		KeyProgressSection:  "Прогресс загрузки",
		KeyTitle:            "Название:",
		KeyDuration:         "Длительность:",
		KeyEstSize:          "Размер:",
		KeyNoVideo:          "Видео не выбрано",
		KeyStatusReady:      "Готов",
		KeyStatusFetching:   "Получение информации о видео...",
		KeyStatusInfoLoaded: "Информация о видео загружена",
		KeyStatusStarting:   "Начало загрузки...",
		KeyStatusProgress:   "Загрузка... %d%%",
		KeyStatusCompleted:  "Загрузка успешно завершена!",
		KeyStatusCancelled:  "Загрузка отменена",
		KeyStatusFailed:     "Ошибка загрузки",
		KeyPleaseEnterURL:   "Введите ссылку YouTube",
		KeyInvalidURL:       "Неверная ссылка YouTube",
		KeyBusy:             "Загрузка уже выполняется",
		KeySuccess:          "Готово",
		KeyError:            "Ошибка",
		KeySavedTo:          "Видео сохранено в",
		KeyOpenFolder:       "Открыть папку с файлом?",
		KeyErrEmptyInput:    "Ссылка не указана",
		KeyErrMalformedURL:  "Это не похоже на ссылку YouTube",
		KeyErrNetwork:       "Ошибка сети, проверьте подключение и попробуйте снова",
		KeyErrUnavailable:   "Видео недоступно или удалено",
		KeyErrWrite:         "Не удаётся записать в папку загрузки",
		KeyErrUnknown:       "Загрузка не удалась по неизвестной причине",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "TubeGet",
		KeyDownload:         "Baixar vídeo",
		KeyCancel:           "Cancelar",
		KeyGetInfo:          "Obter info",
		KeyLoading:          "Carregando...",
		KeyBrowse:           "Procurar",
		KeyEnterURL:         "Insira a URL do YouTube (https://youtube.com/watch?v=...)",
		KeyURLSection:       "URL do YouTube",
		KeyInfoSection:      "Informações do vídeo",
		KeyFormatSection:    "Formato de download",
		KeyLocationSection:  "Pasta de download",
		KeyProgressSection:  "Progresso do download",
		KeyTitle:            "Título:",
		KeyDuration:         "Duração:",
		KeyEstSize:          "Tamanho:",
		KeyNoVideo:          "Nenhum vídeo selecionado",
		KeyStatusReady:      "Pronto",
		KeyStatusFetching:   "Buscando informações do vídeo...",
		KeyStatusInfoLoaded: "Informações do vídeo carregadas",
		KeyStatusStarting:   "Iniciando download...",
		KeyStatusProgress:   "Baixando... %d%%",
		KeyStatusCompleted:  "Download concluído com sucesso!",
		KeyStatusCancelled:  "Download cancelado",
		KeyStatusFailed:     "Falha no download",
		KeyPleaseEnterURL:   "Insira uma URL do YouTube",
		KeyInvalidURL:       "URL do YouTube inválida",
		KeyBusy:             "Já existe um download em andamento",
		KeySuccess:          "Sucesso",
		KeyError:            "Erro",
		KeySavedTo:          "Vídeo salvo em",
		KeyOpenFolder:       "Abrir a pasta do arquivo?",
		KeyErrEmptyInput:    "Nenhuma URL foi fornecida",
		KeyErrMalformedURL:  "A URL não é um link reconhecido do YouTube",
		KeyErrNetwork:       "Erro de rede, verifique sua conexão e tente novamente",
		KeyErrUnavailable:   "Este vídeo está indisponível ou foi removido",
		KeyErrWrite:         "Não é possível gravar na pasta de download",
		KeyErrUnknown:       "O download falhou por um motivo desconhecido",
	}
}
