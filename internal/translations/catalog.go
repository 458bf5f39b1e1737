package translations

// entry maps languages to text. Languages without a cell fall back to EN.
type entry map[Language]string

// catalog is built once and never mutated afterwards.
var catalog = map[MessageID]entry{
	General: {
		EN: "General", RO: "General", ES: "Generales", IT: "Generali", FR: "Général",
		DE: "Allgemein", PL: "Ogólne", RU: "Общие", JA: "一般", UZ: "Asosiy",
		SV: "Allmänt", VI: "Tổng quan", ZH: "通用", ID: "Umum",
	},
	Zoom: {
		EN: "Zoom", IT: "Zoom", ES: "Zoom", FR: "Zoom", DE: "Zoom", RO: "Zoom", SV: "Zoom",
		PL: "Powiększenie", RU: "Масштаб интерфейса", JA: "ズーム", UZ: "Kattalashtirish",
		VI: "Phóng to", ZH: "缩放", ID: "Perbesar",
	},
	DatabaseFiles: {
		EN: "Database files", ES: "Archivos de la base de datos", IT: "File di database",
		FR: "Fichiers de la base de données", DE: "Datenbank Dateien", PL: "Pliki bazy danych",
		RU: "Файлы базы данных", RO: "Fișiere bază de date", JA: "データベース ファイル",
		UZ: "Ma'lumotlar bazasi fayllari", SV: "Databasfiler", VI: "Tập tin cơ sở dữ liệu",
		ZH: "数据库文件", ID: "File Basis Data",
	},
	ParamsNotEditable: {
		EN: "The following parameters can't be modified during the analysis",
		ES: "Los siguientes parámetros no pueden modificarse durante el análisis",
		IT: "I seguenti parametri non sono modificabili durante l'analisi",
		FR: "Les paramètres suivants ne peuvent pas être modifiés durant l'analyse",
		DE: "Die folgenden Paramter können während der Analyse nicht verändert werden",
		PL: "Następujące parametry nie mogą być modyfikowane podczas analizy",
		RU: "Следующие параметры не могут быть изменены во время анализа трафика",
		RO: "Următorii parametri nu sunt modificabili în timpul analizei",
		JA: "以下のパラメーターは分析中は変更できません",
		UZ: "Tahlil vaqtida quydagi parametrlarni o'zgartirib bo'lmaydi",
		SV: "Följande parametrar kan inte ändras under analysen",
		VI: "Các tham số sau không thể bị thay đổi khi đang phân tích",
		ZH: "以下参数在分析过程中不能修改",
		ID: "Parameter berikut tidak dapat diubah saat analisa berlangsung",
	},
	CustomStyle: {
		EN: "Custom style", ES: "Estilo personalizado", IT: "Stile personalizzato",
		FR: "Style personnalisé", DE: "Benutzerdefinierter Stil", PL: "Niestandardowy styl",
		RU: "Свой стиль", RO: "Temă personalizată", JA: "カスタム スタイル",
		UZ: "Moslashtirilgan uslub", SV: "Anpassad stil", VI: "Tùy chỉnh chủ đề",
		ZH: "自定义样式", ID: "Gaya model khusus",
	},
	Copy: {
		EN: "Copy", IT: "Copia", ES: "Copia", FR: "Copie", RO: "Copie", DE: "Kopieren",
		PL: "Kopiuj", RU: "Скопировать", JA: "コピー", UZ: "Nusxalash", SV: "Kopia",
		VI: "Sao chép", ZH: "复制", ID: "Salin",
	},
	Port: {
		EN: "Port", FR: "Port", DE: "Port", PL: "Port", RO: "Port", UZ: "Port", SV: "Port",
		ES: "Puerto", IT: "Porta", RU: "Порт", JA: "ポート", VI: "Cổng", ZH: "端口", ID: "Port",
	},
	InvalidFilters: {
		EN: "Invalid filters", ES: "Filtros inválidos", IT: "Filtri non validi",
		FR: "Filtres invalides", DE: "Ungültige Filter", PL: "Nieprawidłowe filtry",
		RU: "Неверный формат фильтров", RO: "Filtre invalide", JA: "無効なフィルター",
		UZ: "Noto'g'ri filterlar", SV: "Ogiltiga filter", VI: "Bộ lọc không khả dụng",
		ZH: "无效的过滤器", ID: "Filter tidak benar",
	},
	Messages: {
		EN: "Messages", FR: "Messages", ES: "Mensajes", IT: "Messaggi", DE: "Nachrichten",
		PL: "Wiadomości", RU: "Сообщения", RO: "Mesaje", JA: "メッセージ", UZ: "Xabarlar",
		SV: "Meddelanden", VI: "Tin nhắn", ZH: "信息", ID: "Pesan",
	},
	LinkType: {
		EN: "Link type", ES: "Tipo de conexión", IT: "Tipo di collegamento",
		FR: "Type de connexion", DE: "Verbindungsart", PL: "Rodzaj połączenia",
		RU: "Тип соединения", RO: "Tipul conexiunii", JA: "リンク タイプ", UZ: "Havola turi",
		SV: "Länktyp", VI: "Loại liên kết", ZH: "链接类型", ID: "Tipe tautan",
	},
	UnsupportedLinkTypeNotice: {
		EN: "The link type associated with this adapter is not supported by Netlens yet...",
		ES: "La conexión asociada con este adaptador aún no esta implementada en Netlens...",
		IT: "Il tipo di collegamento associato a questo adattatore di rete non è ancora supportato da Netlens...",
		FR: "Le type de connexion associé à cet adaptateur n'est pas encore supporté par Netlens...",
		DE: "Die Verbindungsart dieses Adapters wird noch nicht von Netlens unterstützt...",
		PL: "Rodzaj połączenia powiązany z tym adapterem nie jest jeszcze obsługiwany przez Netlens...",
		RU: "Тип соединения, связанный с этим адаптером, пока не поддерживается Netlens...",
		RO: "Tipul conexiunii asociate acestui adaptor de rețea nu este încă suportat de Netlens...",
		JA: "このアダプターのリンク タイプは Netlens ではまだサポートされていません...",
		UZ: "Ushbu adapter bilan bog'langan havola turi hozircha Netlens tomonidan qo'llab quvvatlanmaydi...",
		SV: "Länktypen associerad med denna adapter stöds inte av Netlens än...",
		VI: "Loại liên kết được gắn với adapter này chưa được Netlens hỗ trợ...",
		ZH: "Netlens 尚不支持与此适配器关联的链接类型...",
		ID: "Tipe tautan yang terkait dengan adapter ini, belum didukung oleh Netlens...",
	},
	StyleFromFile: {
		EN: "Select style from a file", ES: "Selecciona el estilo desde un archivo",
		IT: "Seleziona lo stile da un file", FR: "Sélectionner un style à partir d'un fichier",
		DE: "Stil aus einer Datei wählen", PL: "Wybierz styl z pliku",
		RU: "Выберите тему из файла", RO: "Selectează tema dintr-un fișier",
		JA: "ファイルからスタイルを選択してください", UZ: "Fayldan uslubni tanlang",
		SV: "Välj stil från en fil", VI: "Chọn chủ đề từ file của bạn",
		ZH: "从文件中选择样式", ID: "Pilih gaya model dari file",
	},
	DatabaseFromFile: {
		EN: "Select database file", ES: "Selecciona un archivo de base de datos",
		IT: "Seleziona file di database", FR: "Sélection d'un fichier de base de données",
		DE: "Datenbank Datei auswählen", PL: "Wybierz plik bazy danych",
		RU: "Выберите файл базы данных", RO: "Selectează fișier bază de date",
		JA: "データベース ファイルを選択してください", UZ: "Ma'lumotlar bazasi faylini tanlang",
		SV: "Välj databasfil", VI: "Chọn tập tin cơ sở dữ liệu", ZH: "选择数据库文件",
		ID: "Pilih file basis data",
	},
	FilterByHost: {
		EN: "Filter by network host", ES: "Filtra por host de red", IT: "Filtra per host di rete",
		FR: "Filtrer par réseau hôte", DE: "Nach Netzwerk-Host filtern",
		PL: "Filtruj według hosta sieciowego", RU: "Фильтр по сетевому хосту",
		RO: "Filtrează după host-ul de rețea", JA: "ネットワーク ホストでフィルター",
		UZ: "Tarmoq host bo'yicha filterlash", SV: "Filtrera efter nätverksvärd",
		VI: "Lọc bởi máy chủ mạng", ZH: "按网络主机筛选", ID: "Filter berdasarkan jaringan host",
	},
	Service: {
		EN: "Service", FR: "Service", DE: "Service", SV: "Service", ES: "Servicio",
		IT: "Servizio", PL: "Usługa", RU: "Сервис", RO: "Serviciu", JA: "サービス",
		UZ: "Xizmat", VI: "Dịch vụ", ZH: "服务", ID: "Servis",
	},
	ExportCapture: {
		EN: "Export capture file", IT: "Esporta file di cattura",
		FR: "Exporter le fichier de capture", DE: "Aufzeichnungsdatei exportieren",
		PL: "Eksportuj plik przechwytywania", RU: "Экспорт файла захвата",
		RO: "Export fișier captură", JA: "キャプチャ ファイルをエクスポート",
		UZ: "Cap faylni export qilish", SV: "Exportera inspelningsfil",
		VI: "Xuất tập tin đã bắt", ZH: "导出捕获文件", ID: "Ekspor file tangkapan",
	},
	Directory: {
		EN: "Directory", IT: "Cartella", FR: "Répertoire", DE: "Ordner", PL: "Katalog",
		UZ: "Katalog", SV: "Katalog", RU: "Директория", RO: "Director", JA: "ディレクトリー",
		VI: "Thư mục", ZH: "目录", ID: "Direktori",
	},
	SelectDirectory: {
		EN: "Select destination directory", IT: "Seleziona cartella di destinazione",
		FR: "Sélectionner le répertoire de destination", DE: "Zielorder wählen",
		PL: "Wybierz katalog docelowy", RU: "Выберите директорию назначения",
		RO: "Selectează directorul destinație", JA: "宛先のディレクトリーを選択する",
		UZ: "Manzil katalogni tanlang", SV: "Välj målkatalog", VI: "Chọn thư mục đích đến",
		ZH: "选择目标目录", ID: "Pilih tujuan direktori",
	},
	FileName: {
		EN: "File name", IT: "Nome del file", FR: "Nom du fichier", DE: "Dateiname",
		PL: "Nazwa pliku", RU: "Имя файла", RO: "Nume fișier", JA: "ファイル ネーム",
		UZ: "Fayl nomi", SV: "Filnamn", VI: "Tên file", ZH: "文件名", ID: "Nama file",
	},
	ThumbnailMode: {
		EN: "Thumbnail mode", IT: "Modalità miniatura", FR: "Mode miniature",
		DE: "Bild-in-Bild Modus", PL: "Tryb miniatury", RU: "Режим миниатюры",
		RO: "Mod thumbnail", JA: "サムネイル モード", UZ: "Eskiz rejim", SV: "Miniatyrläge",
		VI: "Chế độ thu nhỏ", ZH: "缩略图模式", ID: "Mode gambar mini",
	},
	LearnMore: {
		EN: "Do you want to learn more?", IT: "Vuoi saperne di più?",
		FR: "Voulez-vous en savoir davantage?", DE: "Mehr erfahren",
		PL: "Chcesz dowiedzieć się więcej?", RU: "Хотите узнать больше?",
		RO: "Vrei să înveți mai multe?", JA: "もっと知りたいですか？",
		UZ: "Ko'proq bilishni hohlaysizmi?", SV: "Vill du veta mer?",
		VI: "Bạn có muốn tìm hiểu thêm?", ZH: "想知道更多吗？",
		ID: "Apakah kamu mau mempelajari lebih lanjut？",
	},
	NetworkAdapter: {
		EN: "Network adapter", IT: "Adattatore di rete", FR: "Carte réseau",
		ES: "Adaptador de red", PL: "Adapter sieciowy", DE: "Netzwerkadapter",
		RU: "Сетевой интерфейс", RO: "Adaptor de rețea", JA: "ネットワーク アダプター",
		UZ: "Tarmoq adapteri", SV: "Nätverksadapter", VI: "Bộ điều hợp mạng",
		ZH: "网络适配器", ID: "Adapter jaringan",
	},
}
