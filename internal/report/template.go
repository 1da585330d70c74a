package report

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>CloudSecure Security Report</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }

body {
    font-family: 'Segoe UI', Arial, sans-serif;
    background: #0f1117;
    color: #e0e0e0;
    min-height: 100vh;
}

.header {
    background: linear-gradient(135deg, #1a1f2e 0%, #16213e 50%, #0f3460 100%);
    padding: 40px;
    border-bottom: 2px solid #e94560;
}

.header h1 { font-size: 2.5rem; color: #ffffff; margin-bottom: 8px; }
.header h1 span { color: #e94560; }
.header p { color: #a0a0b0; font-size: 1rem; margin-top: 6px; }

.container { max-width: 1200px; margin: 0 auto; padding: 30px 20px; }

.summary-grid {
    display: grid;
    grid-template-columns: repeat(5, 1fr);
    gap: 16px;
    margin-bottom: 30px;
}

.summary-card {
    background: #1a1f2e;
    border-radius: 12px;
    padding: 20px;
    text-align: center;
    border: 1px solid #2a2f3e;
}

.summary-card .count { font-size: 2.5rem; font-weight: bold; margin-bottom: 8px; }
.summary-card .label {
    font-size: 0.85rem;
    color: #a0a0b0;
    text-transform: uppercase;
    letter-spacing: 1px;
}

.section-title {
    font-size: 1.3rem;
    color: #ffffff;
    margin-bottom: 20px;
    padding-bottom: 10px;
    border-bottom: 1px solid #2a2f3e;
}

.event-card {
    background: #1a1f2e;
    border-radius: 12px;
    margin-bottom: 16px;
    overflow: hidden;
    border: 1px solid #2a2f3e;
}

.event-header {
    display: flex;
    justify-content: space-between;
    align-items: center;
    padding: 16px 20px;
    background: #1e2435;
    flex-wrap: wrap;
    gap: 10px;
    border-left: 5px solid #6c757d;
}

.event-info { display: flex; flex-wrap: wrap; gap: 16px; align-items: center; }
.event-name { font-weight: bold; font-size: 1rem; color: #ffffff; }
.event-meta { font-size: 0.85rem; color: #a0a0b0; }

.severity-badge {
    padding: 6px 16px;
    border-radius: 20px;
    font-size: 0.8rem;
    font-weight: bold;
    color: white;
    letter-spacing: 1px;
    background-color: #6c757d;
}

.event-analysis { padding: 16px 20px; }
.analysis-item {
    padding: 8px 0;
    border-bottom: 1px solid #2a2f3e;
    font-size: 0.92rem;
    line-height: 1.6;
}
.analysis-item:last-child { border-bottom: none; }

.footer {
    text-align: center;
    padding: 30px;
    color: #606070;
    font-size: 0.85rem;
    border-top: 1px solid #2a2f3e;
    margin-top: 40px;
}

.sev-critical .count, .sev-critical .severity-badge { color: #ffffff; }
.sev-critical.summary-card .count { color: #dc3545; }
.sev-high.summary-card .count { color: #fd7e14; }
.sev-medium.summary-card .count { color: #ffc107; }
.sev-low.summary-card .count { color: #17a2b8; }
.sev-info.summary-card .count { color: #28a745; }

.event-header.sev-critical { border-left-color: #dc3545; }
.event-header.sev-high { border-left-color: #fd7e14; }
.event-header.sev-medium { border-left-color: #ffc107; }
.event-header.sev-low { border-left-color: #17a2b8; }
.event-header.sev-info { border-left-color: #28a745; }

.severity-badge.sev-critical { background-color: #dc3545; }
.severity-badge.sev-high { background-color: #fd7e14; }
.severity-badge.sev-medium { background-color: #ffc107; }
.severity-badge.sev-low { background-color: #17a2b8; }
.severity-badge.sev-info { background-color: #28a745; }
</style>
</head>
<body>
<div class="header">
    <h1>CloudSecure <span>Security Report</span></h1>
    <p>AI-Powered CloudTrail Log Analysis | Generated: {{.GeneratedAt}}</p>
    <p>Run {{.RunID}} | Total Events Analyzed: {{.TotalEvents}}</p>
</div>

<div class="container">
    <div class="summary-grid">
    {{range .Summary}}
        <div class="summary-card {{.Class}}">
            <div class="count">{{.Count}}</div>
            <div class="label">{{.Label}}</div>
        </div>
    {{end}}
    </div>

    <h2 class="section-title">Security Events Analysis</h2>

    {{range .Events}}
    <div class="event-card">
        <div class="event-header {{.Class}}">
            <div class="event-info">
                <span class="event-name">{{.Name}}</span>
                <span class="event-meta">{{.User}}</span>
                <span class="event-meta">{{.Time}}</span>
                <span class="event-meta">{{.SourceIP}}</span>
            </div>
            <span class="severity-badge {{.Class}}">{{.Severity}}</span>
        </div>
        <div class="event-analysis">
            <div class="analysis-item"><strong>Finding:</strong> {{.Finding}}</div>
            <div class="analysis-item"><strong>Risk:</strong> {{.Risk}}</div>
            <div class="analysis-item"><strong>Action:</strong> {{.Action}}</div>
        </div>
    </div>
    {{else}}
    <p>No events were analyzed.</p>
    {{end}}
</div>

<div class="footer">
    <p>CloudSecure Security Analyzer | This report is confidential</p>
</div>
</body>
</html>
`
