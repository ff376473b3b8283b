package shipping

// 配送料テーブル（セント）。
// キーは「A1A 1A1」形式の完全な郵便番号、または先頭3文字のFSAプレフィックス。
// プロセス起動時に読み込まれる定数で、実行中に書き換えない。
var feeTable = map[string]int64{
	//店舗周辺は完全一致で個別料金
	"H3G 2A9": 700,
	"H3G 1M8": 700,
	"H2X 3V4": 700,

	//モントリオール島内（FSAプレフィックス一致）
	"H1A": 1500,
	"H1B": 1500,
	"H1C": 1500,
	"H1E": 1500,
	"H1G": 1400,
	"H1H": 1400,
	"H1J": 1400,
	"H1K": 1400,
	"H1L": 1400,
	"H1M": 1300,
	"H1N": 1300,
	"H1P": 1300,
	"H1R": 1300,
	"H1S": 1200,
	"H1T": 1200,
	"H1V": 1200,
	"H1W": 1100,
	"H1X": 1100,
	"H1Y": 1100,
	"H1Z": 1200,
	"H2A": 1200,
	"H2B": 1200,
	"H2C": 1200,
	"H2E": 1100,
	"H2G": 1000,
	"H2H": 1000,
	"H2J": 1000,
	"H2K": 1000,
	"H2L": 900,
	"H2M": 1100,
	"H2N": 1100,
	"H2P": 1100,
	"H2R": 1000,
	"H2S": 1000,
	"H2T": 900,
	"H2V": 900,
	"H2W": 900,
	"H2X": 900,
	"H2Y": 900,
	"H2Z": 900,
	"H3A": 800,
	"H3B": 800,
	"H3C": 900,
	"H3E": 1100,
	"H3G": 800,
	"H3H": 800,
	"H3J": 900,
	"H3K": 900,
	"H3L": 1100,
	"H3M": 1200,
	"H3N": 1100,
	"H3P": 1000,
	"H3R": 1000,
	"H3S": 1000,
	"H3T": 900,
	"H3V": 1000,
	"H3W": 1000,
	"H3X": 1100,
	"H3Y": 1100,
	"H3Z": 1000,
	"H4A": 1100,
	"H4B": 1200,
	"H4C": 1000,
	"H4E": 1200,
	"H4G": 1100,
	"H4H": 1300,
	"H4J": 1300,
	"H4K": 1400,
	"H4L": 1300,
	"H4M": 1300,
	"H4N": 1300,
	"H4P": 1200,
	"H4R": 1400,
	"H4S": 1400,
	"H4T": 1300,
	"H4V": 1200,
	"H4W": 1200,
	"H4X": 1200,
	"H4Z": 800,

	//ウエストアイランド
	"H8N": 1500,
	"H8P": 1500,
	"H8R": 1500,
	"H8S": 1500,
	"H8T": 1500,
	"H8Y": 1600,
	"H8Z": 1600,
	"H9A": 1600,
	"H9B": 1600,
	"H9C": 1700,
	"H9G": 1700,
	"H9H": 1700,
	"H9J": 1700,
	"H9K": 1800,
	"H9P": 1600,
	"H9R": 1600,
	"H9S": 1500,
	"H9W": 1600,
	"H9X": 1800,

	//ラヴァル
	"H7A": 1800,
	"H7B": 1800,
	"H7C": 1800,
	"H7E": 1700,
	"H7G": 1700,
	"H7H": 1800,
	"H7K": 1800,
	"H7L": 1800,
	"H7M": 1700,
	"H7N": 1700,
	"H7P": 1800,
	"H7R": 1800,
	"H7S": 1700,
	"H7T": 1700,
	"H7V": 1700,
	"H7W": 1700,
	"H7X": 1800,
	"H7Y": 1800,

	//南岸（ロングイユ周辺）
	"J4G": 1700,
	"J4H": 1700,
	"J4J": 1700,
	"J4K": 1700,
	"J4L": 1800,
	"J4M": 1800,
	"J4N": 1800,
	"J4P": 1700,
	"J4R": 1700,
	"J4S": 1800,
	"J4T": 1700,
	"J4V": 1800,
	"J4W": 1700,
	"J4X": 1800,
	"J4Y": 1800,
	"J4Z": 1800,
}
