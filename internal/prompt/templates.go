package prompt

// The instruction texts below are verbatim contracts with the model. The
// output-format blocks are what the interpreter and the client rely on;
// rewording them changes the quality and shape of what comes back. Keep
// them in sync with prompt_test.go fixtures when they change.

const summarizeTemplate = `以下の顧客対応ログを分析し、時系列で経緯を整理してください。

【出力形式】
以下のJSON形式で出力してください。必ず有効なJSONのみを出力し、他のテキストは含めないでください。
[
  {"date": "日時", "person": "相手", "summary": "経緯要約（20文字以内）", "detail": "詳細内容"},
  ...
]

【注意事項】
- 日時が不明な場合は「不明」と記載
- 相手が不明な場合は「顧客」「担当者」などで記載
- 最大10件まで抽出
- 重要な出来事を時系列順に整理

【対応ログ】
%s`

const suggestCauseTemplate = `以下のクレーム対応経緯を分析し、考えられる原因を3つ提案してください。

【出力形式】
【考えられる原因】

1. [原因1のタイトル]
   └ 詳細説明

2. [原因2のタイトル]
   └ 詳細説明

3. [原因3のタイトル]
   └ 詳細説明

【経緯データ】
%s

【元のログ】
%s`

const suggestCountermeasureTemplate = `以下のクレーム対応経緯と原因を踏まえ、具体的な対策を3つ提案してください。

【出力形式】
【改善対策案】

■ 対策1: [タイトル]
  内容: [具体的な対策内容]
  効果: [期待される効果]
  実施時期: [即時/短期/中長期]

■ 対策2: [タイトル]
  内容: [具体的な対策内容]
  効果: [期待される効果]
  実施時期: [即時/短期/中長期]

■ 対策3: [タイトル]
  内容: [具体的な対策内容]
  効果: [期待される効果]
  実施時期: [即時/短期/中長期]

【経緯データ】
%s

【原因】
%s

【元のログ】
%s`

const visualSheetTemplate = `以下のクレーム対応情報を分析し、ビジュアル報告書用のデータを生成してください。

【出力形式】
必ず以下のJSON形式のみで出力してください。他のテキストは含めないでください。
{
  "title": "キャッチフレーズ（20文字以内）",
  "summary": "経緯のサマリー（100文字以内）",
  "rootCause": "根本原因（50文字以内）",
  "causeAnalysis": "原因の詳細分析（100文字以内）",
  "countermeasures": [
    {
      "title": "対策タイトル1",
      "content": "対策内容1（50文字以内）",
      "priority": "高"
    },
    {
      "title": "対策タイトル2",
      "content": "対策内容2（50文字以内）",
      "priority": "中"
    },
    {
      "title": "対策タイトル3",
      "content": "対策内容3（50文字以内）",
      "priority": "低"
    }
  ],
  "expectedEffect": "期待される効果（100文字以内）"
}

【経緯データ】
%s

【原因（ユーザー入力）】
%s

【対策（ユーザー入力）】
%s

【元のログ】
%s`
