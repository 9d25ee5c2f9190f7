package handlers

import "net/http"

// Index serves the single-page expense form.
func Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Expense Tracker</title>
<style>
  body { font-family: sans-serif; max-width: 640px; margin: 2rem auto; padding: 0 1rem; }
  label { display: block; margin-top: 1rem; font-weight: bold; }
  input, textarea { width: 100%; padding: 0.4rem; margin-top: 0.25rem; box-sizing: border-box; }
  button { margin-top: 1rem; padding: 0.5rem 1.5rem; }
  .msg { margin-top: 1rem; padding: 0.5rem; border-radius: 4px; }
  .ok { background: #e6f4ea; color: #1e4620; }
  .err { background: #fce8e6; color: #5f2120; }
  table { width: 100%; margin-top: 1rem; border-collapse: collapse; }
  td, th { text-align: left; padding: 0.3rem 0.5rem; border-bottom: 1px solid #ddd; }
</style>
</head>
<body>
<h1>Expense Tracker</h1>
<p>Enter your expense details, and we will extract the store and amount and save them.</p>

<form id="expense-form">
  <label for="date">Transaction Date (Mandatory)</label>
  <input type="date" id="date" required>

  <label for="message">Transaction Message (Mandatory)</label>
  <textarea id="message" rows="4" placeholder="Enter the expense message..."></textarea>

  <label for="store">Specify Store Name (Optional)</label>
  <input type="text" id="store" placeholder="Provide store name if not in the message">

  <label for="amount">Specify Amount (Optional)</label>
  <input type="text" id="amount" placeholder="Provide amount if not in the message">

  <button type="submit">Extract and Save Transaction</button>
</form>

<div id="result"></div>

<label style="margin-top:2rem"><input type="checkbox" id="show-saved" style="width:auto"> View Saved Transactions</label>
<div id="saved"></div>

<script>
const form = document.getElementById('expense-form');
const result = document.getElementById('result');
const saved = document.getElementById('saved');
const showSaved = document.getElementById('show-saved');

form.addEventListener('submit', async (e) => {
  e.preventDefault();
  result.textContent = '';
  const body = {
    date: document.getElementById('date').value,
    message: document.getElementById('message').value,
    store: document.getElementById('store').value,
    amount: document.getElementById('amount').value,
  };
  try {
    const resp = await fetch('/api/transactions', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify(body),
    });
    const data = await resp.json();
    if (resp.ok) {
      result.className = 'msg ok';
      result.textContent = 'Transaction saved successfully! Date: ' + data.date +
        ' | Amount: ' + data.amount + ' | Store: ' + data.store;
      if (showSaved.checked) loadSaved();
    } else {
      result.className = 'msg err';
      result.textContent = data.error || 'An error occurred.';
    }
  } catch (err) {
    result.className = 'msg err';
    result.textContent = 'An error occurred: ' + err;
  }
});

async function loadSaved() {
  const resp = await fetch('/api/transactions');
  const data = await resp.json();
  if (!data.count) {
    saved.innerHTML = '<p>No transactions found.</p>';
    return;
  }
  let rows = data.transactions.map(t =>
    '<tr><td>' + t.date + '</td><td>' + t.amount + '</td><td>' + t.store + '</td></tr>').join('');
  saved.innerHTML = '<table><tr><th>Date</th><th>Amount</th><th>Store</th></tr>' + rows + '</table>';
}

showSaved.addEventListener('change', () => {
  if (showSaved.checked) loadSaved(); else saved.innerHTML = '';
});
</script>
</body>
</html>
`
