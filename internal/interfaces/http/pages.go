package http

import "github.com/gofiber/fiber/v2"

// RegisterPages monta los shells HTML de la UI. Son páginas estáticas
// autocontenidas que consumen la API JSON de este mismo servidor; el estado
// (snapshot, filtros, edición) vive del lado Go.
func RegisterPages(app *fiber.App) {
	serve := func(path, html string) {
		app.Get(path, func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.SendString(html)
		})
	}
	serve("/", dashboardPage)
	serve("/dashboard", dashboardPage)
	serve("/products", productsPage)
	serve("/login", loginPage)
	serve("/register", registerPage)
}

const pageStyle = `<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,"Segoe UI",Helvetica,Arial,sans-serif;background:#0f1117;color:#e1e4e8;line-height:1.5}
a{color:#58a6ff;text-decoration:none}
nav{display:flex;gap:16px;align-items:center;padding:12px 24px;background:#161b22;border-bottom:1px solid #30363d}
nav .spacer{margin-left:auto}
main{max-width:1100px;margin:0 auto;padding:24px}
h1{font-size:22px;margin-bottom:16px}
.cards{display:grid;grid-template-columns:repeat(auto-fit,minmax(200px,1fr));gap:16px;margin-bottom:24px}
.card{background:#161b22;border:1px solid #30363d;border-radius:8px;padding:16px}
.card .big{font-size:26px;font-weight:700}
table{width:100%;border-collapse:collapse;background:#161b22;border:1px solid #30363d;border-radius:8px}
th,td{text-align:left;padding:10px 12px;border-bottom:1px solid #30363d;font-size:14px}
input,select,button,textarea{background:#0d1117;color:#e1e4e8;border:1px solid #30363d;border-radius:6px;padding:8px 10px;font-size:14px}
button{cursor:pointer;background:#238636;border-color:#238636}
button.secondary{background:#21262d;border-color:#30363d}
form.inline{display:inline-flex;gap:6px}
.filters{display:flex;gap:12px;margin-bottom:16px;flex-wrap:wrap}
.badge{padding:2px 10px;border-radius:12px;font-size:12px;border:1px solid}
.badge.in-stock{color:#3fb950;border-color:#3fb950}
.badge.low-stock{color:#d29922;border-color:#d29922}
.badge.out-of-stock{color:#f85149;border-color:#f85149}
#toasts{position:fixed;top:16px;right:16px;display:flex;flex-direction:column;gap:8px;z-index:10}
.toast{padding:10px 16px;border-radius:6px;font-size:14px}
.toast.success{background:#238636}
.toast.error{background:#da3633}
.auth{max-width:380px;margin:10vh auto}
.auth .card{display:flex;flex-direction:column;gap:12px}
.err{color:#f85149;font-size:13px;min-height:17px}
</style>`

const pageScript = `<script>
async function api(path,opts){
  const r=await fetch(path,Object.assign({headers:{'Content-Type':'application/json'}},opts));
  if(r.status===401){location.href='/login';throw new Error('sin sesión');}
  const body=await r.json();
  if(!r.ok){throw body;}
  return body;
}
function toast(kind,message){
  const t=document.createElement('div');t.className='toast '+kind;t.textContent=message;
  document.getElementById('toasts').appendChild(t);setTimeout(()=>t.remove(),4000);
}
function showToasts(list){(list||[]).forEach(n=>toast(n.kind,n.message));}
async function logout(){await api('/api/auth/logout',{method:'POST'});location.href='/login';}
</script>`

const navHTML = `<nav><strong>Inventory Pro</strong>
<a href="/dashboard">Dashboard</a> <a href="/products">Productos</a>
<span class="spacer"></span><button class="secondary" onclick="logout()">Salir</button></nav>
<div id="toasts"></div>`

const dashboardPage = `<!DOCTYPE html><html lang="es"><head><meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Dashboard - Inventory Pro</title>` + pageStyle + pageScript + `</head><body>` + navHTML + `
<main>
<h1>Dashboard</h1>
<div class="cards">
  <div class="card"><div>Total de productos</div><div class="big" id="total">-</div></div>
  <div class="card"><div>Valor del inventario</div><div class="big" id="value">-</div></div>
  <div class="card"><div>Stock bajo</div><div class="big" id="low">-</div></div>
  <div class="card"><div>Sin stock</div><div class="big" id="out">-</div></div>
</div>
<h1>Productos recientes</h1>
<table><thead><tr><th>Producto</th><th>SKU</th><th>Cantidad</th><th>Precio</th><th>Estado</th></tr></thead>
<tbody id="recent"></tbody></table>
<script>
(async()=>{
  const v=await api('/api/views/dashboard');
  showToasts(v.notifications);
  total.textContent=v.totalProducts; value.textContent='$'+v.totalValue;
  low.textContent=v.lowStock; out.textContent=v.outOfStock;
  recent.innerHTML=v.recentProducts.map(p=>
    '<tr><td>'+p.name+'</td><td>'+p.sku+'</td><td>'+p.quantity+'</td><td>$'+p.price+
    '</td><td><span class="badge '+p.stockStatus+'">'+p.stockStatus+'</span></td></tr>').join('');
})().catch(e=>toast('error',e.message||'Error'));
</script>
</main></body></html>`

const productsPage = `<!DOCTYPE html><html lang="es"><head><meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Productos - Inventory Pro</title>` + pageStyle + pageScript + `</head><body>` + navHTML + `
<main>
<h1>Productos</h1>
<div class="filters">
  <input id="search" placeholder="Buscar por nombre o SKU">
  <select id="type"><option value="">Todos los tipos</option></select>
  <select id="stock">
    <option value="">Todos los niveles</option>
    <option value="in-stock">En stock</option>
    <option value="low-stock">Stock bajo</option>
    <option value="out-of-stock">Sin stock</option>
  </select>
  <button class="secondary" onclick="clearFilters()">Limpiar</button>
</div>
<details class="card" style="margin-bottom:16px"><summary>Agregar producto</summary>
  <form id="createForm" style="display:flex;flex-direction:column;gap:8px;max-width:420px;margin-top:12px">
    <input name="name" placeholder="Nombre" required>
    <input name="type" placeholder="Tipo" required>
    <input name="sku" placeholder="SKU" required>
    <input name="imageUrl" placeholder="URL de imagen (opcional)">
    <textarea name="description" placeholder="Descripción (opcional)"></textarea>
    <input name="quantity" type="number" min="0" value="0" required>
    <input name="price" type="number" min="0" step="0.01" value="0" required>
    <button>Guardar</button>
  </form>
</details>
<table><thead><tr><th>Producto</th><th>Tipo</th><th>Cantidad</th><th>Precio</th><th>Estado</th></tr></thead>
<tbody id="rows"></tbody></table>
<script>
async function load(){
  const q=new URLSearchParams();
  if(search.value)q.set('search',search.value);
  if(type.value)q.set('type',type.value);
  if(stock.value)q.set('stock',stock.value);
  const v=await api('/api/views/products?'+q);
  showToasts(v.notifications);
  const current=type.value;
  type.innerHTML='<option value="">Todos los tipos</option>'+v.types.map(t=>'<option>'+t+'</option>').join('');
  type.value=current;
  rows.innerHTML=v.items.map(p=>
    '<tr><td>'+p.name+'<br><small>SKU: '+p.sku+'</small></td><td>'+p.type+'</td>'+
    '<td><form class="inline" onsubmit="return saveQty(event,\''+p.id+'\')">'+
    '<input type="number" min="0" name="q" value="'+p.quantity+'" style="width:70px">'+
    '<button>✓</button><button type="button" class="secondary" onclick="load()">✕</button></form></td>'+
    '<td>$'+p.price+'</td><td><span class="badge '+p.stockStatus+'">'+p.stockStatus+'</span></td></tr>').join('');
}
async function saveQty(ev,id){
  ev.preventDefault();
  const q=parseInt(ev.target.q.value,10);
  try{await api('/api/products/'+id+'/quantity',{method:'PUT',body:JSON.stringify({quantity:q})});}
  catch(e){toast('error',e.message||'Error');}
  await load();
  return false;
}
createForm.onsubmit=async ev=>{
  ev.preventDefault();
  const f=ev.target;
  try{
    await api('/api/products',{method:'POST',body:JSON.stringify({
      name:f.name.value,type:f.type.value,sku:f.sku.value,imageUrl:f.imageUrl.value,
      description:f.description.value,quantity:parseInt(f.quantity.value,10),price:f.price.value})});
    f.reset();
  }catch(e){toast('error',e.message||'Error');}
  await load();
};
function clearFilters(){search.value='';type.value='';stock.value='';load();}
search.oninput=()=>load(); type.onchange=()=>load(); stock.onchange=()=>load();
load().catch(e=>toast('error',e.message||'Error'));
</script>
</main></body></html>`

const loginPage = `<!DOCTYPE html><html lang="es"><head><meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Iniciar sesión - Inventory Pro</title>` + pageStyle + pageScript + `</head><body>
<div id="toasts"></div>
<main class="auth"><div class="card">
<h1>Iniciar sesión</h1>
<form id="f" style="display:flex;flex-direction:column;gap:10px">
  <input name="username" placeholder="Usuario" autocomplete="username" required>
  <input name="password" type="password" placeholder="Contraseña" autocomplete="current-password" required>
  <div class="err" id="err"></div>
  <button>Entrar</button>
</form>
<small>¿Sin cuenta? <a href="/register">Regístrate</a></small>
</div></main>
<script>
f.onsubmit=async ev=>{
  ev.preventDefault();
  err.textContent='';
  try{
    await api('/api/auth/login',{method:'POST',body:JSON.stringify({
      username:f.username.value,password:f.password.value})});
    location.href='/dashboard';
  }catch(e){err.textContent=e.message||'No se pudo iniciar sesión';}
};
</script>
</body></html>`

const registerPage = `<!DOCTYPE html><html lang="es"><head><meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Registro - Inventory Pro</title>` + pageStyle + pageScript + `</head><body>
<div id="toasts"></div>
<main class="auth"><div class="card">
<h1>Crear cuenta</h1>
<form id="f" style="display:flex;flex-direction:column;gap:10px">
  <input name="username" placeholder="Usuario (3-50 caracteres)" required>
  <input name="password" type="password" placeholder="Contraseña (mínimo 6)" autocomplete="new-password" required>
  <input name="confirmPassword" type="password" placeholder="Confirmar contraseña" autocomplete="new-password" required>
  <div class="err" id="err"></div>
  <button>Registrarme</button>
</form>
<small>¿Ya tienes cuenta? <a href="/login">Inicia sesión</a></small>
</div></main>
<script>
f.onsubmit=async ev=>{
  ev.preventDefault();
  err.textContent='';
  try{
    await api('/api/auth/register',{method:'POST',body:JSON.stringify({
      username:f.username.value,password:f.password.value,confirmPassword:f.confirmPassword.value})});
    location.href='/login';
  }catch(e){err.textContent=e.message||'No se pudo registrar';}
};
</script>
</body></html>`
